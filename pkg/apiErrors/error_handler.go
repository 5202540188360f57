package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de recurso (4000-4999)
	ErrSectionNotFound = "RES_001" // Bloco do painel inexistente
	ErrRouteNotFound   = "RES_002" // Rota inexistente

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrCommunication  = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrSectionNotFound: http.StatusNotFound,
	ErrRouteNotFound:   http.StatusNotFound,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrCommunication:   http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusCode retorna o status HTTP do código; códigos desconhecidos viram 500
func StatusCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta de erro")
	}
}

// NotFound é usado como handler de rotas inexistentes
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
}
