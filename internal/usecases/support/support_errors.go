package support

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrTicketNotFound      = errors.New("ticket não encontrado")
	ErrHelpdeskUnavailable = errors.New("helpdesk indisponível")
	ErrGenerateReference   = errors.New("erro ao gerar referência do ticket")
)

type SupportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *SupportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SupportError) Unwrap() error {
	return e.Err
}

func NewSupportError(err error, code string, details string) *SupportError {
	return &SupportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
