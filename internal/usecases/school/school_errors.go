package school

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrSchoolNotFound        = errors.New("escola não encontrada")
	ErrSchoolAlreadyExists   = errors.New("escola já existe")
	ErrNothingToUpdate       = errors.New("nenhum campo para atualizar")
	ErrInsufficientPrivilege = errors.New("apenas administradores podem alterar o status da escola")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID            = errors.New("erro ao gerar ID")
)

// SchoolError é um erro com contexto adicional para escolas
type SchoolError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	SchoolID string // ID da escola envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *SchoolError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SchoolError) Unwrap() error {
	return e.Err
}

func NewSchoolError(err error, code string, details string) *SchoolError {
	return &SchoolError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSchoolErrorWithID(err error, code string, schoolID string, details string) *SchoolError {
	return &SchoolError{
		Err:      err,
		Code:     code,
		SchoolID: schoolID,
		Details:  details,
	}
}
