package quick_book

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
	"github.com/m04kA/villa-booking-front/internal/service/catalog"
)

// UseCase use case выбора номера и перехода к шагу услуг
type UseCase struct {
	sessions SessionRepository
	catalog  CatalogService
	drafts   DraftStore
	flow     StepFlow
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	catalog CatalogService,
	drafts DraftStore,
	flow StepFlow,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions: sessions,
		catalog:  catalog,
		drafts:   drafts,
		flow:     flow,
		logger:   logger,
	}
}

// Execute кладёт номер и даты поиска в черновик и переводит сессию на шаг услуг.
// Без выбранных дат ничего не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuickBook: session=%s, room=%d", req.SessionID, req.RoomID)

	// 1. Даты берутся из состояния поиска
	search, err := uc.searchState(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if !search.HasDates() {
		uc.logger.Warn("QuickBook: session %s has no dates picked", req.SessionID)
		return nil, ErrDatesRequired
	}

	// 2. Номер: из результатов поиска, иначе из каталога
	room, err := uc.resolveRoom(ctx, &search, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.IsBookable() {
		uc.logger.Warn("QuickBook: room %d has no units left", room.ID)
		return nil, ErrRoomUnavailable
	}

	// Вместимость проверяется мягко
	overCapacity := !room.FitsGuests(search.Guests)
	if overCapacity {
		uc.logger.Warn("QuickBook: %d guests exceed capacity %d of room %d", search.Guests, room.MaxCapacity, room.ID)
	}

	nights := domain.CountNights(search.CheckIn, search.CheckOut)

	// 3. Бронирование начинается с шага выбора номера
	if _, err := uc.flow.Enter(ctx, req.SessionID, domain.StepRoomSelection); err != nil {
		uc.logger.Error("QuickBook: failed to reset step for session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: reset step: %v", ErrInternal, err)
	}

	// 4. Черновик
	if err := uc.drafts.SetRoom(ctx, req.SessionID, *room); err != nil {
		return nil, fmt.Errorf("%w: set room: %v", ErrInternal, err)
	}
	if err := uc.drafts.SetDates(ctx, req.SessionID, search.CheckIn, search.CheckOut, search.Guests, nights); err != nil {
		return nil, fmt.Errorf("%w: set dates: %v", ErrInternal, err)
	}

	// 5. Переход к шагу услуг
	if err := uc.flow.Advance(ctx, req.SessionID, domain.StepServiceSelection); err != nil {
		uc.logger.Error("QuickBook: failed to advance session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: advance: %v", ErrInternal, err)
	}

	uc.logger.Info("QuickBook: session %s booked room %d for %d nights", req.SessionID, room.ID, nights)

	return &Response{
		Room:         *room,
		CheckIn:      search.CheckIn,
		CheckOut:     search.CheckOut,
		Guests:       search.Guests,
		Nights:       nights,
		OverCapacity: overCapacity,
		RedirectTo:   domain.StepServiceSelection.Path(),
	}, nil
}

func (uc *UseCase) searchState(ctx context.Context, sessionID string) (domain.SearchState, error) {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return domain.NewSearchState(), nil
		}
		uc.logger.Error("QuickBook: failed to load session %s: %v", sessionID, err)
		return domain.SearchState{}, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}
	return sess.Search, nil
}

// resolveRoom при активном поиске берёт номер из результатов: в них остаток на выбранные даты
func (uc *UseCase) resolveRoom(ctx context.Context, search *domain.SearchState, roomID int64) (*domain.Room, error) {
	if search.Active {
		found, ok := search.FindResult(roomID)
		if !ok {
			uc.logger.Warn("QuickBook: room %d is not among search results", roomID)
			return nil, ErrRoomUnavailable
		}
		room := found.Room
		room.AvailableRooms = found.AvailableCount
		return &room, nil
	}

	room, err := uc.catalog.FindRoom(ctx, roomID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			uc.logger.Warn("QuickBook: room %d not found", roomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		default:
			return nil, fmt.Errorf("%w: find room: %v", ErrInternal, err)
		}
	}
	return room, nil
}
