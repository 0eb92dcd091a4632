package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("session.repository: failed to encode session")

	// ErrDecode возвращается при ошибке десериализации сессии
	ErrDecode = errors.New("session.repository: failed to decode session")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("session.repository: storage error")

	// ErrConflict возвращается, когда конкурентные изменения не удалось применить за отведённое число попыток
	ErrConflict = errors.New("session.repository: concurrent update conflict")
)
