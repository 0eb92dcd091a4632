package selection

import "errors"

var (
	// ErrEditorNotOpen возвращается, когда шаг услуг не был открыт в этой сессии
	ErrEditorNotOpen = errors.New("selection: editor is not open")

	// ErrAddOnNotFound возвращается, когда услуги нет в каталоге шага
	ErrAddOnNotFound = errors.New("selection: add-on not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("selection: internal error")
)
