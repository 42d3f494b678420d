package googlemaps

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey       = errors.New("API key da plataforma de mapas não configurada")
	ErrInvalidAPIKeyFormat = errors.New("API key da plataforma de mapas com formato inválido")
)

// StatusError carrega o status lógico devolvido pela API (ex.: ZERO_RESULTS, REQUEST_DENIED)
type StatusError struct {
	Operation string
	Status    string
	Message   string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s retornou status %s: %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("%s retornou status %s", e.Operation, e.Status)
}
