package marketanalysis

import (
	"errors"
	"fmt"
)

// Erros da análise de mercado
var (
	// Erros de validação
	ErrMissingAddress = errors.New("endereço é obrigatório")
	ErrInvalidRadius  = errors.New("raio de busca inválido")
	ErrSchoolNotFound = errors.New("escola não encontrada")
	ErrNoAnalysis     = errors.New("escola ainda não possui análise de mercado")

	// Erros de configuração
	ErrMissingAPIKey       = errors.New("API key não configurada")
	ErrInvalidAPIKeyFormat = errors.New("API key com formato inválido")

	// Erros de serviços externos
	ErrGeocodeFailed = errors.New("falha no geocode do endereço")
	ErrPlacesAPI     = errors.New("falha na Places API")

	// Erros de banco de dados
	ErrFetchSchool     = errors.New("erro ao buscar escola")
	ErrPersistAnalysis = errors.New("erro ao salvar análise de mercado")

	ErrUnhandled = errors.New("erro ao buscar análise de mercado")
)

// AnalysisError é um erro com o código da API e, quando houver, o status devolvido pela plataforma de mapas
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Status  string // Status do serviço externo
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAnalysisErrorWithStatus(err error, code string, details string, status string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
		Status:  status,
	}
}
