// Package apperr содержит ошибки, текст которых предназначен пользователю.
package apperr

import (
	"errors"
	"fmt"
)

// UserError — ошибка валидации пользовательского ввода.
// Msg отправляется в чат как есть; состояние при такой ошибке не меняется.
type UserError struct {
	Msg string
}

func (e *UserError) Error() string {
	return e.Msg
}

// User создаёт UserError с форматированием.
func User(format string, args ...any) error {
	return &UserError{Msg: fmt.Sprintf(format, args...)}
}

// Message возвращает пользовательский текст ошибки, если он есть.
func Message(err error) (string, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Msg, true
	}
	return "", false
}
