package services

import (
	"errors"
	"fmt"

	"github.com/Mikheil23/FinalProject/internal/validators"
)

// Виды ошибок операций, проверяются через errors.Is
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
)

// OperationError - типизированный результат неуспешной операции
type OperationError struct {
	Kind    error
	Message string
	Details []string
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Kind
}

func NotFound(message string) error {
	return &OperationError{Kind: ErrNotFound, Message: message}
}

func Unauthorized(message string) error {
	return &OperationError{Kind: ErrUnauthorized, Message: message}
}

func InvalidOperation(format string, args ...any) error {
	return &OperationError{Kind: ErrInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) error {
	return &OperationError{Kind: ErrConflict, Message: message}
}

// ValidationFailed - ошибки валидатора превращаются в ошибку вида ErrValidation
func ValidationFailed(err error) error {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return &OperationError{Kind: ErrValidation, Message: verr.Error(), Details: verr.Messages}
	}
	return &OperationError{Kind: ErrValidation, Message: err.Error(), Details: []string{err.Error()}}
}

// validate - проверка модели, nil если нарушений нет
func validate(model any) error {
	if err := validators.Validate(model); err != nil {
		return ValidationFailed(err)
	}
	return nil
}
