package dashboarding

import (
	"github.com/vfg2006/ecom-dashboard/internal/domain"
)

const (
	salesColor           = "rgba(75,192,192,0.4)"
	newCustomersColor    = "rgba(255,99,132,0.6)"
	repeatCustomersColor = "rgba(54,162,235,0.6)"
)

// cohortPalette é repetida quando há mais coortes do que cores
var cohortPalette = []string{
	"rgba(255,206,86,0.6)",
	"rgba(75,192,192,0.6)",
	"rgba(223,102,255,0.6)",
	"rgba(255,216,146,0.6)",
	"rgba(75,192,162,0.6)",
	"rgba(153,122,205,0.6)",
	"rgba(185,206,186,0.6)",
	"rgba(175,182,102,0.6)",
	"rgba(253,122,135,0.6)",
	"rgba(215,216,186,0.6)",
	"rgba(175,202,192,0.6)",
	"rgba(223,232,165,0.6)",
	"rgba(115,106,186,0.6)",
	"rgba(175,192,182,0.6)",
	"rgba(133,202,205,0.6)",
}

// SalesChartData monta o gráfico de vendas totais por período
func SalesChartData(sales []domain.MonthlyMetric) domain.ChartData {
	labels, values := monthlySeries(sales)
	return singleSeries(labels, domain.ChartDataset{
		Label:           "Total Sales",
		Data:            values,
		BackgroundColor: salesColor,
	})
}

// NewCustomersChartData monta o gráfico de novos clientes por período
func NewCustomersChartData(customers []domain.MonthlyMetric) domain.ChartData {
	labels, values := monthlySeries(customers)
	return singleSeries(labels, domain.ChartDataset{
		Label:           "New Customers",
		Data:            values,
		BackgroundColor: newCustomersColor,
	})
}

// RepeatCustomersChartData usa o primeiro nome do cliente como rótulo
func RepeatCustomersChartData(records []domain.RepeatCustomerRecord) domain.ChartData {
	labels := make([]string, 0, len(records))
	values := make([]float64, 0, len(records))
	for _, record := range records {
		labels = append(labels, record.CustomerName)
		values = append(values, float64(record.RepeatOrderCount))
	}

	return singleSeries(labels, domain.ChartDataset{
		Label:           "Purchase Count",
		Data:            values,
		BackgroundColor: repeatCustomersColor,
	})
}

// CohortChartData atribui uma cor da paleta para cada fatia
func CohortChartData(cohorts []domain.CohortRecord) domain.ChartData {
	labels := make([]string, 0, len(cohorts))
	values := make([]float64, 0, len(cohorts))
	colors := make([]string, 0, len(cohorts))
	for i, cohort := range cohorts {
		labels = append(labels, cohort.CohortLabel)
		values = append(values, float64(cohort.CustomerCount))
		colors = append(colors, cohortPalette[i%len(cohortPalette)])
	}

	return singleSeries(labels, domain.ChartDataset{
		Label:            "Customer Lifetime Value",
		Data:             values,
		BackgroundColors: colors,
	})
}

func monthlySeries(metrics []domain.MonthlyMetric) ([]string, []float64) {
	labels := make([]string, 0, len(metrics))
	values := make([]float64, 0, len(metrics))
	for _, metric := range metrics {
		labels = append(labels, metric.Period)
		values = append(values, metric.Value)
	}
	return labels, values
}

func singleSeries(labels []string, dataset domain.ChartDataset) domain.ChartData {
	return domain.ChartData{
		Labels:   labels,
		Datasets: []domain.ChartDataset{dataset},
	}
}

// panel descreve um gráfico do painel: de qual bloco vem, título, tipo e como montar os dados
type panel struct {
	section domain.Section
	title   string
	kind    domain.ChartKind
	data    func(*domain.DashboardSnapshot) domain.ChartData
}

var panels = []panel{
	{
		section: domain.SectionSales,
		title:   "Total Sales Over Time",
		kind:    domain.ChartKindLine,
		data:    func(s *domain.DashboardSnapshot) domain.ChartData { return SalesChartData(s.Sales) },
	},
	{
		section: domain.SectionNewCustomers,
		title:   "New Customers Added Over Time",
		kind:    domain.ChartKindBar,
		data:    func(s *domain.DashboardSnapshot) domain.ChartData { return NewCustomersChartData(s.NewCustomers) },
	},
	{
		section: domain.SectionRepeatCustomers,
		title:   "Number Purchase Repeat over Customers",
		kind:    domain.ChartKindBar,
		data:    func(s *domain.DashboardSnapshot) domain.ChartData { return RepeatCustomersChartData(s.RepeatCustomers) },
	},
	{
		section: domain.SectionCohorts,
		title:   "Customer Lifetime Value by Cohorts",
		kind:    domain.ChartKindPie,
		data:    func(s *domain.DashboardSnapshot) domain.ChartData { return CohortChartData(s.Cohorts) },
	},
}

const mapTitle = "Geographical Distribution of Customers"

func findPanel(section domain.Section) (panel, bool) {
	for _, p := range panels {
		if p.section == section {
			return p, true
		}
	}
	return panel{}, false
}
