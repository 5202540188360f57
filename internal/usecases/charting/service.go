// Package charting converte dados já agregados na configuração dos gráficos exibidos no painel
package charting

import (
	"maps"
	"slices"

	"github.com/vfg2006/ecom-dashboard/internal/domain"
)

// Renderer define a interface do componente de gráficos
type Renderer interface {
	// Render retorna o gráfico do tipo pedido. Para tipos desconhecidos retorna nil e false,
	// sem erro: o bloco simplesmente fica vazio.
	Render(kind domain.ChartKind, data domain.ChartData, options domain.ChartOptions) (*domain.Chart, bool)
}

type Service struct{}

func NewService() Renderer {
	return &Service{}
}

func (s *Service) Render(kind domain.ChartKind, data domain.ChartData, options domain.ChartOptions) (*domain.Chart, bool) {
	switch kind {
	case domain.ChartKindBar:
		return Bar(data, options), true
	case domain.ChartKindLine:
		return Line(data, options), true
	case domain.ChartKindPie:
		return Pie(data, options), true
	default:
		return nil, false
	}
}

func Bar(data domain.ChartData, options domain.ChartOptions) *domain.Chart {
	return newChart(domain.ChartKindBar, data, options)
}

func Line(data domain.ChartData, options domain.ChartOptions) *domain.Chart {
	return newChart(domain.ChartKindLine, data, options)
}

func Pie(data domain.ChartData, options domain.ChartOptions) *domain.Chart {
	return newChart(domain.ChartKindPie, data, options)
}

// newChart copia os dados recebidos para que o gráfico não compartilhe slices com o chamador
func newChart(kind domain.ChartKind, data domain.ChartData, options domain.ChartOptions) *domain.Chart {
	return &domain.Chart{
		Kind:    kind,
		Data:    cloneData(data),
		Options: maps.Clone(options),
	}
}

func cloneData(data domain.ChartData) domain.ChartData {
	labels := slices.Clone(data.Labels)
	if labels == nil {
		labels = []string{}
	}

	datasets := make([]domain.ChartDataset, 0, len(data.Datasets))
	for _, ds := range data.Datasets {
		values := slices.Clone(ds.Data)
		if values == nil {
			values = []float64{}
		}

		datasets = append(datasets, domain.ChartDataset{
			Label:            ds.Label,
			Data:             values,
			BackgroundColor:  ds.BackgroundColor,
			BackgroundColors: slices.Clone(ds.BackgroundColors),
		})
	}

	return domain.ChartData{
		Labels:   labels,
		Datasets: datasets,
	}
}
