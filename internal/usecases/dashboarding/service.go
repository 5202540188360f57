// Package dashboarding orquestra uma montagem do painel: busca as métricas, monta os gráficos e o mapa
package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/charting"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/mapping"
	"github.com/vfg2006/ecom-dashboard/pkg/log"
	"github.com/vfg2006/ecom-dashboard/pkg/metrics"
	"github.com/vfg2006/ecom-dashboard/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var ErrUnknownSection = errors.New("dashboarding: bloco desconhecido")

// Dashboard define a interface do painel
type Dashboard interface {
	// Load busca os cinco blocos em paralelo. Falhas são registradas e deixam apenas o bloco afetado vazio.
	Load(ctx context.Context) *domain.DashboardSnapshot

	// Mount executa uma montagem completa: dados, gráficos e mapa
	Mount(ctx context.Context) *domain.DashboardView

	// Chart busca apenas o bloco pedido e renderiza seu gráfico. Um kind vazio usa o tipo padrão do bloco.
	Chart(ctx context.Context, section domain.Section, kind domain.ChartKind) (*domain.ChartPanel, error)

	// Map busca a distribuição por cidade e resolve o mapa
	Map(ctx context.Context) domain.MapState
}

type Service struct {
	title       string
	ecommerce   ecommerce.EcommerceIntegrator
	geocoder    nominatim.Geocoder
	charts      charting.Renderer
	mapSettings mapping.Settings
	newID       func() (string, error)
}

func NewService(
	cfg *config.Config,
	ecommerceIntegrator ecommerce.EcommerceIntegrator,
	geocoder nominatim.Geocoder,
	charts charting.Renderer,
) Dashboard {
	return &Service{
		title:       cfg.App.Title,
		ecommerce:   ecommerceIntegrator,
		geocoder:    geocoder,
		charts:      charts,
		mapSettings: mapping.SettingsFromConfig(cfg),
		newID:       utils.GenerateID,
	}
}

func (s *Service) Load(ctx context.Context) *domain.DashboardSnapshot {
	snapshot := domain.NewDashboardSnapshot()
	errs := make([]error, len(domain.Sections))

	// Cada goroutine escreve apenas no campo do seu bloco
	wg := sync.WaitGroup{}
	for i, section := range domain.Sections {
		wg.Add(1)
		go func(i int, section domain.Section) {
			defer wg.Done()
			errs[i] = s.fetch(ctx, section, snapshot)
		}(i, section)
	}
	wg.Wait()

	failed := 0
	for i, section := range domain.Sections {
		snapshot.Results[section] = s.result(ctx, section, errs[i])
		if errs[i] != nil {
			failed++
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sections":         len(domain.Sections),
		"failed_sections":  failed,
		"sales_periods":    len(snapshot.Sales),
		"cities":           len(snapshot.Cities),
		"cohorts":          len(snapshot.Cohorts),
		"repeat_customers": len(snapshot.RepeatCustomers),
	}).Debug("dashboard: dados carregados")

	return snapshot
}

// fetch busca um bloco e só substitui o campo correspondente em caso de sucesso
func (s *Service) fetch(ctx context.Context, section domain.Section, snapshot *domain.DashboardSnapshot) (err error) {
	defer func(started time.Time) {
		metrics.ObserveSectionFetch(string(section), started, err)
	}(time.Now())

	switch section {
	case domain.SectionSales:
		sales, err := s.ecommerce.GetMonthlySales(ctx)
		if err != nil {
			return err
		}
		snapshot.Sales = sales
	case domain.SectionNewCustomers:
		customers, err := s.ecommerce.GetMonthlyNewCustomers(ctx)
		if err != nil {
			return err
		}
		snapshot.NewCustomers = customers
	case domain.SectionRepeatCustomers:
		records, err := s.ecommerce.GetRepeatCustomers(ctx)
		if err != nil {
			return err
		}
		snapshot.RepeatCustomers = records
	case domain.SectionGeographicDistribution:
		cities, err := s.ecommerce.GetCityDistribution(ctx)
		if err != nil {
			return err
		}
		snapshot.Cities = cities
	case domain.SectionCohorts:
		cohorts, err := s.ecommerce.GetLifetimeValueCohorts(ctx)
		if err != nil {
			return err
		}
		snapshot.Cohorts = cohorts
	default:
		return errors.Wrapf(ErrUnknownSection, "%q", section)
	}

	return nil
}

func (s *Service) result(ctx context.Context, section domain.Section, err error) domain.SectionResult {
	if err == nil {
		return domain.SectionResult{Status: domain.SectionStatusOK}
	}

	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"section": section,
	}).Error("dashboard: erro ao buscar dados do bloco")

	return domain.SectionResult{
		Status: domain.SectionStatusFailed,
		Error:  err.Error(),
	}
}

func (s *Service) Mount(ctx context.Context) *domain.DashboardView {
	snapshot := s.Load(ctx)

	charts := make([]domain.ChartPanel, 0, len(panels))
	for _, p := range panels {
		charts = append(charts, s.renderPanel(p, p.kind, snapshot))
	}

	return &domain.DashboardView{
		Title:    s.title,
		Charts:   charts,
		Map:      s.resolveMap(ctx, snapshot.Cities),
		MapTitle: mapTitle,
		Results:  snapshot.Results,
	}
}

func (s *Service) Chart(ctx context.Context, section domain.Section, kind domain.ChartKind) (*domain.ChartPanel, error) {
	p, ok := findPanel(section)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSection, "%q", section)
	}

	if kind == "" {
		kind = p.kind
	}

	snapshot := domain.NewDashboardSnapshot()
	snapshot.Results[section] = s.result(ctx, section, s.fetch(ctx, section, snapshot))

	chartPanel := s.renderPanel(p, kind, snapshot)
	return &chartPanel, nil
}

func (s *Service) Map(ctx context.Context) domain.MapState {
	snapshot := domain.NewDashboardSnapshot()
	section := domain.SectionGeographicDistribution
	snapshot.Results[section] = s.result(ctx, section, s.fetch(ctx, section, snapshot))

	return s.resolveMap(ctx, snapshot.Cities)
}

func (s *Service) renderPanel(p panel, kind domain.ChartKind, snapshot *domain.DashboardSnapshot) domain.ChartPanel {
	chart, ok := s.charts.Render(kind, p.data(snapshot), nil)
	if !ok {
		chart = nil
	}

	return domain.ChartPanel{
		Section:   p.section,
		Title:     p.title,
		ElementID: s.elementID(string(p.section)),
		Chart:     chart,
		Result:    snapshot.Results[p.section],
	}
}

// resolveMap cria o componente de mapa da montagem e o descarta ao final
func (s *Service) resolveMap(ctx context.Context, cities []domain.CityAggregate) domain.MapState {
	component := mapping.NewComponent(s.geocoder, s.mapSettings, s.elementID("map"))
	defer component.Close()

	component.Init()

	// O erro já foi registrado pelo componente e aparece no estado como mensagem
	_ = component.Resolve(ctx, cities)

	return component.State()
}

// elementID gera um id de elemento HTML único por montagem
func (s *Service) elementID(prefix string) string {
	id, err := s.newID()
	if err != nil {
		return prefix
	}
	return prefix + "-" + id
}
