package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecom-dashboard/pkg/apiErrors"
)

// KeepAliver é o agendador que mantém a API de métricas acordada
type KeepAliver interface {
	TriggerManualPing() bool
	GetStatus() map[string]any
}

// RunKeepAlive dispara manualmente o keep-alive da API de métricas
func RunKeepAlive(service KeepAliver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunKeepAlive")

		if !service.TriggerManualPing() {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Keep-alive já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Keep-alive iniciado com sucesso",
		})
	}
}

// GetKeepAliveStatus retorna o status do keep-alive
func GetKeepAliveStatus(service KeepAliver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetStatus())
	}
}
