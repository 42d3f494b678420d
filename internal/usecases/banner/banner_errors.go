package banner

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidAudience     = errors.New("público do banner inválido")
	ErrInvalidWindow       = errors.New("fim da exibição deve ser posterior ao início")
	ErrBannerNotFound      = errors.New("banner não encontrado")
	ErrSchoolNotFound      = errors.New("escola do banner não encontrada")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID          = errors.New("erro ao gerar ID")
)

type BannerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *BannerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BannerError) Unwrap() error {
	return e.Err
}

func NewBannerError(err error, code string, details string) *BannerError {
	return &BannerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
