// Package ecommercedomain contém os formatos de resposta da API de métricas do e-commerce
package ecommercedomain

// MonthlySales é um item de /orders/total-sales/monthly
type MonthlySales struct {
	ID         string  `json:"_id"`
	TotalSales float64 `json:"totalSales"`
}

// MonthlyCount é um item de /customers/new-customers/monthly e de
// /customers/geographical-distribution (onde o _id é o nome da cidade)
type MonthlyCount struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// RepeatCustomer é um item de /orders/repeat-customers/monthly
type RepeatCustomer struct {
	CustomerDetails CustomerDetails `json:"customerDetails"`
	RepeatOrders    int             `json:"repeatOrders"`
}

type Cohort struct {
	Cohort        string `json:"cohort"`
	CustomerCount int    `json:"customerCount"`
}

// CohortsResponse é o corpo de /customers/ltv/cohorts, o único endpoint com envelope
type CohortsResponse struct {
	Data []Cohort `json:"data"`
}
