package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`

	cause error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает исходную ошибку (для errors.Is / errors.As)
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по коду, поэтому копии из With* совпадают с sentinel-значениями
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) clone() *AppError {
	c := *e
	c.Details = make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		c.Details[k] = v
	}
	return &c
}

// WithDetails возвращает копию ошибки с дополнительными деталями
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	c := e.clone()
	for k, v := range details {
		c.Details[k] = v
	}
	return c
}

// WithMessage возвращает копию ошибки с другим текстом
func (e *AppError) WithMessage(message string) *AppError {
	c := e.clone()
	c.Message = message
	return c
}

// Wrap возвращает копию ошибки с причиной; текст причины попадает в details.cause
func (e *AppError) Wrap(cause error) *AppError {
	c := e.clone()
	c.cause = cause
	if cause != nil {
		c.Details["cause"] = cause.Error()
	}
	return c
}
