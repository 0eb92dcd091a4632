package submit_booking

// Исходы отправки для метрик
const (
	outcomeCreated  = "created"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Поля формы оформления
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldWhatsapp = "whatsapp"
)

// Request данные формы оформления
type Request struct {
	SessionID       string
	Name            string
	Email           string
	Whatsapp        string
	SpecialRequests string
}

// Response результат успешной отправки
type Response struct {
	BookingCode string
	RedirectTo  string
}
