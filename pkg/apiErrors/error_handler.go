package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Recurso não encontrado
	ErrConflict            = "VAL_005" // Recurso já existe

	// Erros da análise de mercado
	ErrMissingAddress      = "MAP_001" // Endereço não informado
	ErrGeocodeFailed       = "MAP_002" // Endereço não encontrado pelo geocoding
	ErrMissingAPIKey       = "MAP_003" // Chave da API de mapas ausente
	ErrInvalidAPIKeyFormat = "MAP_004" // Chave da API de mapas com formato inválido
	ErrPlacesAPI           = "MAP_005" // Falha na busca de lugares próximos
	ErrInvalidRadius       = "MAP_006" // Raio fora do intervalo aceito

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrMissingAddress:        http.StatusBadRequest,
	ErrGeocodeFailed:         http.StatusBadRequest,
	ErrMissingAPIKey:         http.StatusInternalServerError,
	ErrInvalidAPIKeyFormat:   http.StatusInternalServerError,
	ErrPlacesAPI:             http.StatusInternalServerError,
	ErrInvalidRadius:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado.
// Status carrega o status devolvido pelo serviço externo, quando houver.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
	Status  string `json:"status,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	Write(w, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Write escreve um APIError já montado
func Write(w http.ResponseWriter, apiErr APIError) {
	WriteWithStatus(w, StatusFor(apiErr.Code), apiErr)
}

// WriteWithStatus escreve o erro com um status HTTP fora do mapeamento padrão
func WriteWithStatus(w http.ResponseWriter, httpStatus int, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(apiErr)
}
