package domain

// Section identifica cada bloco do painel
type Section string

const (
	SectionSales                  Section = "sales"
	SectionNewCustomers           Section = "new-customers"
	SectionRepeatCustomers        Section = "repeat-customers"
	SectionGeographicDistribution Section = "geographic-distribution"
	SectionCohorts                Section = "cohorts"
)

// Sections lista os blocos na ordem em que são exibidos
var Sections = []Section{
	SectionSales,
	SectionNewCustomers,
	SectionRepeatCustomers,
	SectionGeographicDistribution,
	SectionCohorts,
}

type SectionStatus string

const (
	SectionStatusOK     SectionStatus = "ok"
	SectionStatusFailed SectionStatus = "failed"
)

// SectionResult registra o resultado da busca de um bloco
type SectionResult struct {
	Status SectionStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// DashboardSnapshot agrupa as cinco cópias de dados buscadas em uma montagem do painel.
// Blocos cuja busca falhou permanecem vazios.
type DashboardSnapshot struct {
	Sales           []MonthlyMetric           `json:"sales"`
	NewCustomers    []MonthlyMetric           `json:"new_customers"`
	RepeatCustomers []RepeatCustomerRecord    `json:"repeat_customers"`
	Cities          []CityAggregate           `json:"cities"`
	Cohorts         []CohortRecord            `json:"cohorts"`
	Results         map[Section]SectionResult `json:"results"`
}

// NewDashboardSnapshot cria um snapshot vazio, com todos os blocos sem dados
func NewDashboardSnapshot() *DashboardSnapshot {
	return &DashboardSnapshot{
		Sales:           []MonthlyMetric{},
		NewCustomers:    []MonthlyMetric{},
		RepeatCustomers: []RepeatCustomerRecord{},
		Cities:          []CityAggregate{},
		Cohorts:         []CohortRecord{},
		Results:         make(map[Section]SectionResult, len(Sections)),
	}
}

// Failed indica se a busca do bloco falhou
func (s *DashboardSnapshot) Failed(section Section) bool {
	return s.Results[section].Status == SectionStatusFailed
}

// ChartPanel é um gráfico do painel com o título exibido acima dele
type ChartPanel struct {
	Section   Section       `json:"section"`
	Title     string        `json:"title"`
	ElementID string        `json:"element_id"`
	Chart     *Chart        `json:"chart,omitempty"`
	Result    SectionResult `json:"result"`
}

// DashboardView é o resultado de uma montagem completa do painel
type DashboardView struct {
	Title    string                    `json:"title"`
	Charts   []ChartPanel              `json:"charts"`
	Map      MapState                  `json:"map"`
	MapTitle string                    `json:"map_title"`
	Results  map[Section]SectionResult `json:"results"`
}
