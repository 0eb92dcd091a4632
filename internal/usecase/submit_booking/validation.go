package submit_booking

import (
	"regexp"
	"strings"
)

const (
	msgNameRequired     = "Nama wajib diisi"
	msgEmailRequired    = "Email wajib diisi"
	msgEmailInvalid     = "Format email tidak valid"
	msgWhatsappRequired = "Nomor WhatsApp wajib diisi"
	msgWhatsappInvalid  = "Nomor WhatsApp tidak valid (10-15 digit)"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "\t", "")
)

// validateRequest проверяет все три поля сразу и возвращает ошибки по каждому
func validateRequest(req *Request) error {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fields[FieldName] = msgNameRequired
	}

	switch {
	case strings.TrimSpace(req.Email) == "":
		fields[FieldEmail] = msgEmailRequired
	case !emailPattern.MatchString(req.Email):
		fields[FieldEmail] = msgEmailInvalid
	}

	switch {
	case strings.TrimSpace(req.Whatsapp) == "":
		fields[FieldWhatsapp] = msgWhatsappRequired
	case !phonePattern.MatchString(normalizePhone(req.Whatsapp)):
		fields[FieldWhatsapp] = msgWhatsappInvalid
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// normalizePhone убирает пробелы и дефисы из номера
func normalizePhone(phone string) string {
	return phoneNoise.Replace(phone)
}
