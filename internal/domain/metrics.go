// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// MonthlyMetric representa um valor agregado por período (ex: total de vendas ou novos clientes no mês)
type MonthlyMetric struct {
	Period string  `json:"period"` // Identificador do período, ex: 2024-01
	Value  float64 `json:"value"`
}

// RepeatCustomerRecord representa um cliente e a quantidade de pedidos repetidos
type RepeatCustomerRecord struct {
	CustomerName     string `json:"customer_name"`
	RepeatOrderCount int    `json:"repeat_order_count"`
}

// CohortRecord representa a quantidade de clientes de uma coorte de valor de vida (LTV)
type CohortRecord struct {
	CohortLabel   string `json:"cohort_label"`
	CustomerCount int    `json:"customer_count"`
}

// CityAggregate representa a quantidade de clientes em uma cidade, ainda sem coordenadas
type CityAggregate struct {
	CityName      string `json:"city_name"`
	CustomerCount int    `json:"customer_count"`
}

// ResolvedLocation é um CityAggregate enriquecido com as coordenadas do geocodificador
type ResolvedLocation struct {
	CityName      string  `json:"city_name"`
	CustomerCount int     `json:"customer_count"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// Coordinates representa um ponto geográfico
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolve associa as coordenadas encontradas à cidade de origem
func (c CityAggregate) Resolve(coords Coordinates) ResolvedLocation {
	return ResolvedLocation{
		CityName:      c.CityName,
		CustomerCount: c.CustomerCount,
		Latitude:      coords.Latitude,
		Longitude:     coords.Longitude,
	}
}
