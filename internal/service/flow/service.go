package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
)

// Decision результат проверки входа на этап
type Decision struct {
	Allowed  bool
	Redirect domain.Step
}

// Service машина состояний этапов бронирования
type Service struct {
	repo   SessionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса этапов
func NewService(repo SessionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Enter проверяет условие входа на этап до формирования ответа.
// При успехе этап записывается в сессию; иначе возвращается этап для перенаправления.
func (s *Service) Enter(ctx context.Context, sessionID string, step domain.Step) (Decision, error) {
	if !step.IsValid() {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownStep, step)
	}

	var decision Decision
	_, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		redirect, ok := domain.EnterStep(step, &sess.Draft)
		decision = Decision{Allowed: ok, Redirect: redirect}
		if !ok {
			return errRedirect
		}
		sess.Step = step
		// Подтверждение завершает черновик: возврат назад снова упрётся в guard
		if step == domain.StepConfirmation {
			sess.Draft = domain.NewDraft()
			sess.Editor = domain.Editor{}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errRedirect) {
		s.logger.Error("Enter: failed to update session %s: %v", sessionID, err)
		return Decision{}, fmt.Errorf("%w: Enter - repository error: %v", ErrInternal, err)
	}

	if !decision.Allowed {
		s.logger.Warn("Enter: session %s cannot enter %s, redirecting to %s", sessionID, step, decision.Redirect)
	}
	return decision, nil
}

// Advance переводит сессию на следующий этап по таблице переходов
func (s *Service) Advance(ctx context.Context, sessionID string, to domain.Step) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownStep, to)
	}

	_, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if !domain.CanTransition(sess.Step, to) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, sess.Step, to)
		}
		if _, ok := domain.EnterStep(to, &sess.Draft); !ok {
			return ErrRoomRequired
		}
		sess.Step = to
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTransitionNotAllowed) || errors.Is(err, ErrRoomRequired) {
			s.logger.Warn("Advance: session %s: %v", sessionID, err)
			return err
		}
		s.logger.Error("Advance: failed to update session %s: %v", sessionID, err)
		return fmt.Errorf("%w: Advance - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Advance: session %s moved to %s", sessionID, to)
	return nil
}

// Current возвращает текущий этап сессии
func (s *Service) Current(ctx context.Context, sessionID string) (domain.Step, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return domain.StepRoomSelection, nil
		}
		return "", fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}
	if sess.Step == "" {
		return domain.StepRoomSelection, nil
	}
	return sess.Step, nil
}
