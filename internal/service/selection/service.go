package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// Service редактор выбора услуг на шаге услуг.
// Изменения копятся в рабочей копии сессии и попадают в черновик только при Commit или Skip.
type Service struct {
	repo    SessionRepository
	catalog CatalogService
	logger  Logger
	now     func() time.Time
}

// NewService создает новый экземпляр редактора услуг
func NewService(repo SessionRepository, catalog CatalogService, logger Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Open открывает редактор: загружает каталог услуг и копирует выбор из черновика.
// Несохранённые изменения прошлого захода отбрасываются.
func (s *Service) Open(ctx context.Context, sessionID string) (*View, error) {
	addOns, err := s.catalog.ListAddOns(ctx)
	catalogUnavailable := err != nil
	if catalogUnavailable {
		s.logger.Warn("Open: service catalog unavailable for session %s: %v", sessionID, err)
		addOns = []domain.AddOn{}
	}

	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Editor = domain.Editor{
			Open:     true,
			Working:  refreshAddOns(sess.Draft.Services, addOns),
			Catalog:  addOns,
			OpenedAt: s.now(),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Open: failed to update session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Open - repository error: %v", ErrInternal, err)
	}

	return newView(sess, catalogUnavailable), nil
}

// Toggle добавляет услугу с количеством 1 или убирает её
func (s *Service) Toggle(ctx context.Context, sessionID string, addOnID int64) (*View, error) {
	return s.edit(ctx, "Toggle", sessionID, addOnID, func(sel domain.Selection, addOn domain.AddOn) domain.Selection {
		return sel.Toggle(addOn)
	})
}

// Increment увеличивает количество услуги в пределах её лимита
func (s *Service) Increment(ctx context.Context, sessionID string, addOnID int64) (*View, error) {
	return s.edit(ctx, "Increment", sessionID, addOnID, func(sel domain.Selection, addOn domain.AddOn) domain.Selection {
		return sel.Increment(addOn.ID)
	})
}

// Decrement уменьшает количество услуги, но не ниже 1
func (s *Service) Decrement(ctx context.Context, sessionID string, addOnID int64) (*View, error) {
	return s.edit(ctx, "Decrement", sessionID, addOnID, func(sel domain.Selection, addOn domain.AddOn) domain.Selection {
		return sel.Decrement(addOn.ID)
	})
}

// Commit переносит рабочую копию в черновик и закрывает редактор
func (s *Service) Commit(ctx context.Context, sessionID string) error {
	return s.close(ctx, "Commit", sessionID, func(e *domain.Editor) domain.Selection {
		return e.Working.Clone()
	})
}

// Skip сохраняет в черновик пустой набор услуг и закрывает редактор
func (s *Service) Skip(ctx context.Context, sessionID string) error {
	return s.close(ctx, "Skip", sessionID, func(*domain.Editor) domain.Selection {
		return domain.Selection{}
	})
}

func (s *Service) edit(
	ctx context.Context,
	op, sessionID string,
	addOnID int64,
	apply func(sel domain.Selection, addOn domain.AddOn) domain.Selection,
) (*View, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if !sess.Editor.Open {
			return ErrEditorNotOpen
		}
		addOn, ok := domain.FindAddOn(sess.Editor.Catalog, addOnID)
		if !ok {
			return fmt.Errorf("%w: id=%d", ErrAddOnNotFound, addOnID)
		}
		sess.Editor.Working = apply(sess.Editor.Working, *addOn)
		return nil
	})
	if err != nil {
		return nil, s.mapError(op, sessionID, err)
	}

	s.logger.Info("%s: session %s add-on %d, quantity now %d",
		op, sessionID, addOnID, sess.Editor.Working.Quantity(addOnID))
	return newView(sess, false), nil
}

func (s *Service) close(ctx context.Context, op, sessionID string, result func(e *domain.Editor) domain.Selection) error {
	_, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if !sess.Editor.Open {
			return ErrEditorNotOpen
		}
		sess.Draft.Services = result(&sess.Editor)
		sess.Editor = domain.Editor{}
		return nil
	})
	if err != nil {
		return s.mapError(op, sessionID, err)
	}

	s.logger.Info("%s: session %s services committed", op, sessionID)
	return nil
}

func (s *Service) mapError(op, sessionID string, err error) error {
	if errors.Is(err, ErrEditorNotOpen) || errors.Is(err, ErrAddOnNotFound) {
		s.logger.Warn("%s: session %s: %v", op, sessionID, err)
		return err
	}
	s.logger.Error("%s: failed to update session %s: %v", op, sessionID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// refreshAddOns обновляет данные выбранных услуг по свежему каталогу.
// Услуги, которых больше нет в каталоге, остаются как есть.
func refreshAddOns(sel domain.Selection, catalog []domain.AddOn) domain.Selection {
	out := sel.Clone()
	for i := range out {
		if addOn, ok := domain.FindAddOn(catalog, out[i].AddOn.ID); ok {
			out[i].AddOn = *addOn
			if limit, ok := addOn.QuantityLimit(); ok && out[i].Quantity > limit {
				out[i].Quantity = limit
			}
		}
	}
	return out
}
