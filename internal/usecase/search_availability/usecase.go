package search_availability

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

// UseCase use case поиска доступных номеров.
// Одинаковые поиски, идущие одновременно, делят один запрос к API.
// Применяется только ответ на последние параметры поиска сессии.
type UseCase struct {
	villaClient  VillaClient
	sessions     SessionRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	group        singleflight.Group
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	villaClient VillaClient,
	sessions SessionRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		villaClient:  villaClient,
		sessions:     sessions,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск и сохраняет результат в сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchAvailability: session=%s, check_in=%s, check_out=%s, guests=%d",
		req.SessionID, domain.FormatDate(req.CheckIn), domain.FormatDate(req.CheckOut), req.Guests)

	// 1. Валидация без обращения к API
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SearchAvailability: validation failed: %v", err)
		uc.observe(outcomeInvalid)
		return nil, err
	}

	// 2. Запоминаем параметры как последние запрошенные
	key := paramKey(req)
	_, err := uc.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		s.Search.CheckIn = req.CheckIn
		s.Search.CheckOut = req.CheckOut
		s.Search.Guests = req.Guests
		s.Search.Pending = key
		return nil
	})
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to update session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to store search params: %v", ErrInternal, err)
	}

	// 3. Запрос к API
	rooms, err := uc.fetch(ctx, key, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			uc.logger.Warn("SearchAvailability: session %s went away, result dropped", req.SessionID)
			uc.observe(outcomeAborted)
			return nil, ctxErr
		}
		uc.logger.Error("SearchAvailability: villa API error for session %s: %v", req.SessionID, err)
		uc.releasePending(ctx, req.SessionID, key)
		uc.observe(outcomeFailed)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityFetchFailed, err)
	}

	// 4. Ответ не применяется, если вызывающая сторона уже ушла
	if err := ctx.Err(); err != nil {
		uc.logger.Warn("SearchAvailability: session %s went away, result dropped", req.SessionID)
		uc.observe(outcomeAborted)
		return nil, err
	}

	nights := domain.CountNights(req.CheckIn, req.CheckOut)
	results := make([]domain.AvailableRoom, 0, len(rooms))
	for i := range rooms {
		results = append(results, rooms[i].ToAvailableRoom(nights))
	}

	// 5. Применяем, только если параметры не сменились
	sess, err := uc.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		if s.Search.Pending != key {
			return ErrSearchSuperseded
		}
		s.Search.Results = results
		s.Search.Active = true
		s.Search.Pending = ""
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSearchSuperseded) {
			uc.logger.Warn("SearchAvailability: session %s result for %s superseded", req.SessionID, key)
			uc.observe(outcomeSuperseded)
			return nil, err
		}
		uc.logger.Error("SearchAvailability: failed to store results for session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to store search results: %v", ErrInternal, err)
	}

	resp := responseFromState(sess.Search)
	if resp.View == domain.ViewNoResults {
		uc.observe(outcomeNoResults)
	} else {
		uc.observe(outcomeResults)
	}

	uc.logger.Info("SearchAvailability: session %s found %d rooms", req.SessionID, len(resp.Results))
	return resp, nil
}

// Current возвращает текущее состояние поиска сессии
func (uc *UseCase) Current(ctx context.Context, sessionID string) (*Response, error) {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return responseFromState(domain.NewSearchState()), nil
		}
		uc.logger.Error("SearchAvailability: failed to load session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}
	return responseFromState(sess.Search), nil
}

// Clear сбрасывает фильтр: показывается весь каталог, число гостей по умолчанию
func (uc *UseCase) Clear(ctx context.Context, sessionID string) (*Response, error) {
	sess, err := uc.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		s.Search = domain.NewSearchState()
		return nil
	})
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to clear search for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to clear search: %v", ErrInternal, err)
	}

	uc.logger.Info("SearchAvailability: session %s filter cleared", sessionID)
	return responseFromState(sess.Search), nil
}

// fetch выполняет запрос через singleflight. Общий запрос не отменяется уходом
// одного из ожидающих, ожидание же прерывается по ctx.
func (uc *UseCase) fetch(ctx context.Context, key string, req *Request) ([]villaapi.Room, error) {
	apiReq := villaapi.AvailabilityRequest{
		CheckIn:  domain.FormatDate(req.CheckIn),
		CheckOut: domain.FormatDate(req.CheckOut),
		Guests:   req.Guests,
	}
	shared := context.WithoutCancel(ctx)

	ch := uc.group.DoChan(key, func() (interface{}, error) {
		return uc.villaClient.CheckAvailability(shared, apiReq)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]villaapi.Room), nil
	}
}

// releasePending снимает отметку ожидания, если она всё ещё наша.
// Прежние результаты остаются нетронутыми.
func (uc *UseCase) releasePending(ctx context.Context, sessionID, key string) {
	_, err := uc.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		if s.Search.Pending != key {
			return ErrSearchSuperseded
		}
		s.Search.Pending = ""
		return nil
	})
	if err != nil && !errors.Is(err, ErrSearchSuperseded) {
		uc.logger.Warn("SearchAvailability: failed to release pending search for session %s: %v", sessionID, err)
	}
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncSearch(outcome)
	}
}
