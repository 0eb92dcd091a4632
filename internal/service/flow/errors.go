package flow

import "errors"

var (
	// ErrTransitionNotAllowed возвращается при попытке перескочить через этап
	ErrTransitionNotAllowed = errors.New("flow: step transition not allowed")

	// ErrRoomRequired возвращается, когда этап требует выбранного номера
	ErrRoomRequired = errors.New("flow: room must be selected first")

	// ErrUnknownStep возвращается для неизвестного этапа
	ErrUnknownStep = errors.New("flow: unknown step")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("flow: internal error")
)

// errRedirect прерывает запись сессии, когда вход на этап запрещён
var errRedirect = errors.New("flow: redirect")
