package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// Service каталог номеров и дополнительных услуг
type Service struct {
	villaClient VillaClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(villaClient VillaClient, logger Logger) *Service {
	return &Service{
		villaClient: villaClient,
		logger:      logger,
	}
}

// ListRooms получает каталог номеров
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.villaClient.ListRooms(ctx)
	if err != nil {
		s.logger.Error("ListRooms: villa API error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	result := make([]domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, rooms[i].ToDomain())
	}
	return result, nil
}

// FindRoom ищет номер в каталоге по ID
func (s *Service) FindRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	room, ok := domain.FindRoom(rooms, roomID)
	if !ok {
		s.logger.Warn("FindRoom: room id=%d not found", roomID)
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// ListAddOns получает каталог дополнительных услуг
func (s *Service) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	services, err := s.villaClient.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListAddOns: villa API error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceCatalogUnavailable, err)
	}

	result := make([]domain.AddOn, 0, len(services))
	for i := range services {
		result = append(result, services[i].ToDomain())
	}
	return result, nil
}
