package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
	"github.com/m04kA/villa-booking-front/internal/service/bookings/models"
)

// Service сервис для получения подтверждённых бронирований
type Service struct {
	villaClient VillaClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(villaClient VillaClient, logger Logger) *Service {
	return &Service{
		villaClient: villaClient,
		logger:      logger,
	}
}

// GetByCode получает бронирование по коду, выданному API при создании
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	s.logger.Info("GetByCode: fetching booking code=%s", code)

	booking, err := s.villaClient.GetBooking(ctx, code)
	if err != nil {
		if errors.Is(err, villaapi.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: villa API error for booking code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - villa API error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCode: successfully fetched booking code=%s", code)
	return models.FromBookingDetail(booking), nil
}
