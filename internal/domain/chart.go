package domain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ChartKind identifica o tipo de gráfico a ser renderizado
type ChartKind string

const (
	ChartKindBar  ChartKind = "bar"
	ChartKindLine ChartKind = "line"
	ChartKindPie  ChartKind = "pie"
)

// ChartDataset representa uma série de valores com sua cor de exibição.
// BackgroundColors é usado quando cada valor tem sua própria cor (gráfico de pizza).
type ChartDataset struct {
	Label            string    `json:"label"`
	Data             []float64 `json:"data"`
	BackgroundColor  string    `json:"-"`
	BackgroundColors []string  `json:"-"`
}

// MarshalJSON emite backgroundColor como texto ou como lista, no formato aceito pelo Chart.js
func (d ChartDataset) MarshalJSON() ([]byte, error) {
	out := struct {
		Label           string    `json:"label"`
		Data            []float64 `json:"data"`
		BackgroundColor any       `json:"backgroundColor,omitempty"`
	}{
		Label: d.Label,
		Data:  d.Data,
	}

	if len(d.BackgroundColors) > 0 {
		out.BackgroundColor = d.BackgroundColors
	} else if d.BackgroundColor != "" {
		out.BackgroundColor = d.BackgroundColor
	}

	return json.Marshal(out)
}

// ChartData contém os rótulos e as séries de um gráfico
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartOptions é repassado sem alterações para o componente de gráfico no navegador
type ChartOptions map[string]any

// Chart é a configuração final entregue ao Chart.js
type Chart struct {
	Kind    ChartKind    `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options,omitempty"`
}
