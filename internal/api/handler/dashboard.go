package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/ecom-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecom-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed templates/dashboard.html
var templates embed.FS

var dashboardPage = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

// RenderDashboard monta o painel e entrega a página HTML com as configurações dos gráficos e do mapa.
// Blocos que falharam aparecem vazios; a página sempre responde 200.
func RenderDashboard(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view := service.Mount(r.Context())

		// Renderiza em memória para não enviar uma página pela metade
		var buf bytes.Buffer
		if err := dashboardPage.Execute(&buf, view); err != nil {
			logger.WithError(err).Error("Erro ao renderizar a página do painel")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar o painel", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("Erro ao enviar a página do painel")
		}
	}
}

// GetDashboard retorna a montagem completa do painel em JSON
func GetDashboard(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Mount(r.Context()))
	}
}

// GetDashboardMap retorna apenas o estado do mapa
func GetDashboardMap(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Map(r.Context()))
	}
}

// GetChart retorna o gráfico de um bloco. O parâmetro type troca o tipo do gráfico;
// um tipo desconhecido não renderiza nada e responde 204.
func GetChart(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := domain.Section(httprouter.ParamsFromContext(r.Context()).ByName("section"))
		kind := domain.ChartKind(r.URL.Query().Get("type"))

		panel, err := service.Chart(r.Context(), section, kind)
		if err != nil {
			if errors.Is(err, dashboarding.ErrUnknownSection) {
				apiErrors.WriteError(w, apiErrors.ErrSectionNotFound, "Bloco do painel não encontrado", map[string]string{"section": string(section)})
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar o gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o gráfico", nil)
			return
		}

		if panel.Chart == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, r, http.StatusOK, panel)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resposta")
	}
}
