package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

const msgSubmissionFailed = "Terjadi kesalahan saat membuat booking. Silakan coba lagi."

// UseCase use case отправки бронирования
type UseCase struct {
	villaClient VillaClient
	drafts      DraftStore
	flow        StepFlow
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	villaClient VillaClient,
	drafts DraftStore,
	flow StepFlow,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		villaClient: villaClient,
		drafts:      drafts,
		flow:        flow,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет форму, создаёт бронирование в API и завершает черновик.
// При любой ошибке черновик сохраняется и посетитель остаётся на оформлении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Черновик должен содержать номер
	draft, err := uc.drafts.Get(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}
	if !draft.HasRoom() {
		uc.logger.Warn("SubmitBooking: session %s has no room selected", req.SessionID)
		return nil, ErrNoRoomSelected
	}

	// 2. Введённые значения сохраняются даже при ошибках проверки
	customer := domain.Customer{
		Name:            req.Name,
		Email:           req.Email,
		Whatsapp:        req.Whatsapp,
		SpecialRequests: req.SpecialRequests,
	}
	if err := uc.drafts.SetCustomerInfo(ctx, req.SessionID, customer); err != nil {
		return nil, fmt.Errorf("%w: save customer info: %v", ErrInternal, err)
	}

	// 3. Проверка формы до обращения к API
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed for session %s: %v", req.SessionID, err)
		uc.observe(outcomeInvalid)
		return nil, err
	}

	// 4. Создание бронирования
	draft.Customer = customer
	created, err := uc.villaClient.CreateBooking(ctx, toCreateRequest(&draft))
	if err != nil {
		if errors.Is(err, villaapi.ErrRejected) {
			uc.logger.Warn("SubmitBooking: villa API rejected booking for session %s: %v", req.SessionID, err)
			uc.observe(outcomeRejected)
			return nil, &SubmissionError{Message: rejectionMessage(err), Err: err}
		}
		uc.logger.Error("SubmitBooking: villa API error for session %s: %v", req.SessionID, err)
		uc.observe(outcomeFailed)
		return nil, &SubmissionError{Message: msgSubmissionFailed, Err: err}
	}

	// 5. Бронирование создано: черновик очищается, сессия переходит к подтверждению
	if err := uc.drafts.Clear(ctx, req.SessionID); err != nil {
		uc.logger.Error("SubmitBooking: booking %s created but draft not cleared: %v", created.BookingCode, err)
	}
	if err := uc.flow.Advance(ctx, req.SessionID, domain.StepConfirmation); err != nil {
		uc.logger.Error("SubmitBooking: booking %s created but step not advanced: %v", created.BookingCode, err)
	}

	uc.observe(outcomeCreated)
	uc.logger.Info("SubmitBooking: session %s created booking %s", req.SessionID, created.BookingCode)

	return &Response{
		BookingCode: created.BookingCode,
		RedirectTo:  domain.StepConfirmation.Path() + "/" + url.PathEscape(created.BookingCode),
	}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingSubmission(outcome)
	}
}

// toCreateRequest собирает тело запроса создания бронирования из черновика
func toCreateRequest(d *domain.BookingDraft) villaapi.CreateBookingRequest {
	req := villaapi.CreateBookingRequest{
		RoomID:           d.Room.ID,
		CustomerName:     strings.TrimSpace(d.Customer.Name),
		CustomerWhatsapp: d.Customer.Whatsapp,
		CustomerEmail:    d.Customer.Email,
		CheckIn:          domain.FormatDate(d.CheckIn),
		CheckOut:         domain.FormatDate(d.CheckOut),
		GuestCount:       d.Guests,
		Services:         make([]villaapi.BookingServiceLine, 0, len(d.Services)),
	}

	if d.Customer.SpecialRequests != "" {
		special := d.Customer.SpecialRequests
		req.SpecialRequests = &special
	}

	for _, item := range d.Services {
		req.Services = append(req.Services, villaapi.BookingServiceLine{
			ServiceID: item.AddOn.ID,
			Quantity:  item.Quantity,
		})
	}

	return req
}

// rejectionMessage достаёт сообщение сервера из ошибки отказа
func rejectionMessage(err error) string {
	var rejected *villaapi.RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return msgSubmissionFailed
}
