package reporting

import "errors"

// ValidationError indica entrada inválida do chamador: erro terminal,
// nunca sujeito a retry
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError verifica se o erro (ou sua cadeia) é de validação
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
