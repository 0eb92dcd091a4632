package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
)

// Service черновик бронирования посетителя.
// Каждый сеттер заменяет свою группу полей одной атомарной записью сессии.
type Service struct {
	repo   SessionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(repo SessionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает черновик сессии. Для неизвестной сессии это пустой черновик.
func (s *Service) Get(ctx context.Context, sessionID string) (domain.BookingDraft, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return domain.NewDraft(), nil
		}
		s.logger.Error("Get: failed to load session %s: %v", sessionID, err)
		return domain.BookingDraft{}, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return sess.Draft, nil
}

// SetRoom заменяет выбранный номер. Даты и услуги сохраняются.
func (s *Service) SetRoom(ctx context.Context, sessionID string, room domain.Room) error {
	return s.update(ctx, "SetRoom", sessionID, func(d *domain.BookingDraft) error {
		d.Room = room.Clone()
		return nil
	})
}

// SetDates заменяет даты, число гостей и ночей одной записью.
// nights < 1 пересчитывается по датам.
func (s *Service) SetDates(ctx context.Context, sessionID string, checkIn, checkOut time.Time, guests, nights int) error {
	if !domain.IsValidStay(checkIn, checkOut) {
		s.logger.Warn("SetDates: invalid range %s..%s for session %s",
			domain.FormatDate(checkIn), domain.FormatDate(checkOut), sessionID)
		return ErrInvalidDateRange
	}
	if guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}
	if nights < 1 {
		nights = domain.CountNights(checkIn, checkOut)
	}

	return s.update(ctx, "SetDates", sessionID, func(d *domain.BookingDraft) error {
		d.CheckIn = checkIn
		d.CheckOut = checkOut
		d.Guests = guests
		d.Nights = nights
		return nil
	})
}

// SetServices заменяет набор выбранных услуг целиком
func (s *Service) SetServices(ctx context.Context, sessionID string, services domain.Selection) error {
	for _, item := range services {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity of service %d must be at least 1", ErrInvalidInput, item.AddOn.ID)
		}
	}

	return s.update(ctx, "SetServices", sessionID, func(d *domain.BookingDraft) error {
		d.Services = services.Clone()
		return nil
	})
}

// SetCustomerInfo заменяет все четыре поля заказчика
func (s *Service) SetCustomerInfo(ctx context.Context, sessionID string, customer domain.Customer) error {
	return s.update(ctx, "SetCustomerInfo", sessionID, func(d *domain.BookingDraft) error {
		d.Customer = customer
		return nil
	})
}

// Clear сбрасывает черновик в пустое состояние
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.update(ctx, "Clear", sessionID, func(d *domain.BookingDraft) error {
		*d = domain.NewDraft()
		return nil
	})
}

// GetTotals считает стоимость текущего черновика
func (s *Service) GetTotals(ctx context.Context, sessionID string) (domain.PriceBreakdown, error) {
	draft, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	return domain.ComputeTotals(draft), nil
}

func (s *Service) update(ctx context.Context, op, sessionID string, fn func(d *domain.BookingDraft) error) error {
	_, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		return fn(&sess.Draft)
	})
	if err != nil {
		s.logger.Error("%s: failed to update session %s: %v", op, sessionID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	s.logger.Info("%s: session %s updated", op, sessionID)
	return nil
}
