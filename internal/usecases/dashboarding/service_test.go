package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ecommercemocks "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/mocks"
	nominatimmocks "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/mocks"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/charting"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/mapping"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Title = "E-Commerce Dashboard"
	cfg.Geocoder.Limit = 8
	cfg.Map.CenterLat = 20.5937
	cfg.Map.CenterLon = 78.9629
	cfg.Map.Zoom = 5
	cfg.Map.MaxZoom = 19
	cfg.Map.TileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	return cfg
}

func newTestService(ctrl *gomock.Controller) (*Service, *ecommercemocks.MockEcommerceIntegrator, *nominatimmocks.MockGeocoder) {
	ecommerceMock := ecommercemocks.NewMockEcommerceIntegrator(ctrl)
	geocoderMock := nominatimmocks.NewMockGeocoder(ctrl)

	service := NewService(testConfig(), ecommerceMock, geocoderMock, charting.NewService()).(*Service)
	service.newID = func() (string, error) { return "abc123", nil }

	return service, ecommerceMock, geocoderMock
}

func expectAllSections(m *ecommercemocks.MockEcommerceIntegrator, cities []domain.CityAggregate) {
	m.EXPECT().GetMonthlySales(gomock.Any()).Return([]domain.MonthlyMetric{
		{Period: "2024-01", Value: 100},
		{Period: "2024-02", Value: 150},
	}, nil)
	m.EXPECT().GetMonthlyNewCustomers(gomock.Any()).Return([]domain.MonthlyMetric{
		{Period: "2024-01", Value: 3},
	}, nil)
	m.EXPECT().GetRepeatCustomers(gomock.Any()).Return([]domain.RepeatCustomerRecord{
		{CustomerName: "Ana", RepeatOrderCount: 4},
	}, nil)
	m.EXPECT().GetCityDistribution(gomock.Any()).Return(cities, nil)
	m.EXPECT().GetLifetimeValueCohorts(gomock.Any()).Return([]domain.CohortRecord{
		{CohortLabel: "2024-01", CustomerCount: 7},
	}, nil)
}

func TestService_Mount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ecommerceMock, geocoderMock := newTestService(ctrl)
	expectAllSections(ecommerceMock, []domain.CityAggregate{{CityName: "Mumbai", CustomerCount: 5}})
	geocoderMock.EXPECT().Geocode(gomock.Any(), "Mumbai").Return(domain.Coordinates{Latitude: 19.07, Longitude: 72.87}, nil)

	view := service.Mount(context.Background())

	assert.Equal(t, "E-Commerce Dashboard", view.Title)
	require.Len(t, view.Charts, 4)

	wantKinds := map[domain.Section]domain.ChartKind{
		domain.SectionSales:           domain.ChartKindLine,
		domain.SectionNewCustomers:    domain.ChartKindBar,
		domain.SectionRepeatCustomers: domain.ChartKindBar,
		domain.SectionCohorts:         domain.ChartKindPie,
	}
	for _, chartPanel := range view.Charts {
		require.NotNil(t, chartPanel.Chart, chartPanel.Section)
		assert.Equal(t, wantKinds[chartPanel.Section], chartPanel.Chart.Kind)
		assert.Equal(t, domain.SectionStatusOK, chartPanel.Result.Status)
		assert.Equal(t, fmt.Sprintf("%s-abc123", chartPanel.Section), chartPanel.ElementID)
	}

	assert.Equal(t, []float64{100, 150}, view.Charts[0].Chart.Data.Datasets[0].Data)

	assert.False(t, view.Map.Loading)
	assert.Empty(t, view.Map.Error)
	require.NotNil(t, view.Map.Surface)
	assert.Equal(t, "map-abc123", view.Map.Surface.ElementID)
	require.Len(t, view.Map.Surface.Markers, 1)
	assert.Equal(t, "Mumbai: 5 customers", view.Map.Surface.Markers[0].Popup)

	for _, section := range domain.Sections {
		assert.Equal(t, domain.SectionStatusOK, view.Results[section].Status)
	}
}

func TestService_Load_FailuresAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ecommerceMock, _ := newTestService(ctrl)

	// O primeiro bloco falha, os demais continuam sendo carregados
	ecommerceMock.EXPECT().GetMonthlySales(gomock.Any()).Return(nil, errors.New("status 503"))
	ecommerceMock.EXPECT().GetMonthlyNewCustomers(gomock.Any()).Return([]domain.MonthlyMetric{{Period: "2024-01", Value: 3}}, nil)
	ecommerceMock.EXPECT().GetRepeatCustomers(gomock.Any()).Return([]domain.RepeatCustomerRecord{{CustomerName: "Ana", RepeatOrderCount: 4}}, nil)
	ecommerceMock.EXPECT().GetCityDistribution(gomock.Any()).Return(nil, errors.New("timeout"))
	ecommerceMock.EXPECT().GetLifetimeValueCohorts(gomock.Any()).Return([]domain.CohortRecord{{CohortLabel: "2024-01", CustomerCount: 7}}, nil)

	snapshot := service.Load(context.Background())

	assert.Empty(t, snapshot.Sales)
	assert.NotNil(t, snapshot.Sales)
	assert.Empty(t, snapshot.Cities)
	assert.Len(t, snapshot.NewCustomers, 1)
	assert.Len(t, snapshot.RepeatCustomers, 1)
	assert.Len(t, snapshot.Cohorts, 1)

	assert.True(t, snapshot.Failed(domain.SectionSales))
	assert.Equal(t, "status 503", snapshot.Results[domain.SectionSales].Error)
	assert.True(t, snapshot.Failed(domain.SectionGeographicDistribution))
	assert.False(t, snapshot.Failed(domain.SectionNewCustomers))
	assert.False(t, snapshot.Failed(domain.SectionCohorts))
}

func TestService_Mount_AllFetchesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ecommerceMock, _ := newTestService(ctrl)
	fail := errors.New("connection refused")
	ecommerceMock.EXPECT().GetMonthlySales(gomock.Any()).Return(nil, fail)
	ecommerceMock.EXPECT().GetMonthlyNewCustomers(gomock.Any()).Return(nil, fail)
	ecommerceMock.EXPECT().GetRepeatCustomers(gomock.Any()).Return(nil, fail)
	ecommerceMock.EXPECT().GetCityDistribution(gomock.Any()).Return(nil, fail)
	ecommerceMock.EXPECT().GetLifetimeValueCohorts(gomock.Any()).Return(nil, fail)

	view := service.Mount(context.Background())

	// Os gráficos continuam sendo renderizados, apenas sem dados
	require.Len(t, view.Charts, 4)
	for _, chartPanel := range view.Charts {
		require.NotNil(t, chartPanel.Chart)
		assert.Empty(t, chartPanel.Chart.Data.Labels)
		assert.Equal(t, domain.SectionStatusFailed, chartPanel.Result.Status)
	}

	// Sem cidades não há busca de coordenadas nem mensagem de erro no mapa
	assert.False(t, view.Map.Loading)
	assert.Empty(t, view.Map.Error)
	assert.Empty(t, view.Map.Locations)
}

func TestService_Mount_LimitsGeocoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cities := make([]domain.CityAggregate, 0, 12)
	for i := 0; i < 12; i++ {
		cities = append(cities, domain.CityAggregate{CityName: fmt.Sprintf("Cidade %d", i), CustomerCount: 12 - i})
	}

	service, ecommerceMock, geocoderMock := newTestService(ctrl)
	expectAllSections(ecommerceMock, cities)
	geocoderMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinates{Latitude: 10, Longitude: 20}, nil).Times(mapping.DefaultLimit)

	view := service.Mount(context.Background())

	assert.Len(t, view.Map.Locations, 8)
	assert.Len(t, view.Map.Surface.Markers, 8)
}

func TestService_Mount_GeocodingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ecommerceMock, geocoderMock := newTestService(ctrl)
	expectAllSections(ecommerceMock, []domain.CityAggregate{{CityName: "Atlantis", CustomerCount: 1}})
	geocoderMock.EXPECT().Geocode(gomock.Any(), "Atlantis").Return(domain.Coordinates{}, errors.New("nenhum candidato"))

	view := service.Mount(context.Background())

	assert.Equal(t, mapping.ErrorMessage, view.Map.Error)
	assert.False(t, view.Map.Loading)
	assert.Empty(t, view.Map.Locations)
	// Os gráficos não são afetados pela falha do mapa
	assert.Equal(t, domain.SectionStatusOK, view.Results[domain.SectionSales].Status)
}

func TestService_Chart(t *testing.T) {
	tests := []struct {
		name      string
		section   domain.Section
		kind      domain.ChartKind
		setup     func(m *ecommercemocks.MockEcommerceIntegrator)
		wantErr   error
		wantChart bool
		wantKind  domain.ChartKind
	}{
		{
			name:    "Tipo padrão do bloco",
			section: domain.SectionSales,
			setup: func(m *ecommercemocks.MockEcommerceIntegrator) {
				m.EXPECT().GetMonthlySales(gomock.Any()).Return([]domain.MonthlyMetric{{Period: "2024-01", Value: 1}}, nil)
			},
			wantChart: true,
			wantKind:  domain.ChartKindLine,
		},
		{
			name:    "Outro tipo pedido explicitamente",
			section: domain.SectionCohorts,
			kind:    domain.ChartKindBar,
			setup: func(m *ecommercemocks.MockEcommerceIntegrator) {
				m.EXPECT().GetLifetimeValueCohorts(gomock.Any()).Return([]domain.CohortRecord{}, nil)
			},
			wantChart: true,
			wantKind:  domain.ChartKindBar,
		},
		{
			name:    "Tipo desconhecido não renderiza gráfico",
			section: domain.SectionNewCustomers,
			kind:    "radar",
			setup: func(m *ecommercemocks.MockEcommerceIntegrator) {
				m.EXPECT().GetMonthlyNewCustomers(gomock.Any()).Return([]domain.MonthlyMetric{}, nil)
			},
			wantChart: false,
		},
		{
			name:    "Bloco sem gráfico",
			section: domain.SectionGeographicDistribution,
			setup:   func(m *ecommercemocks.MockEcommerceIntegrator) {},
			wantErr: ErrUnknownSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, ecommerceMock, _ := newTestService(ctrl)
			tt.setup(ecommerceMock)

			chartPanel, err := service.Chart(context.Background(), tt.section, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if !tt.wantChart {
				assert.Nil(t, chartPanel.Chart)
				return
			}

			require.NotNil(t, chartPanel.Chart)
			assert.Equal(t, tt.wantKind, chartPanel.Chart.Kind)
		})
	}
}

func TestService_Map(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ecommerceMock, geocoderMock := newTestService(ctrl)
	ecommerceMock.EXPECT().GetCityDistribution(gomock.Any()).Return([]domain.CityAggregate{{CityName: "Mumbai", CustomerCount: 5}}, nil)
	geocoderMock.EXPECT().Geocode(gomock.Any(), "Mumbai").Return(domain.Coordinates{Latitude: 19.07, Longitude: 72.87}, nil)

	state := service.Map(context.Background())

	require.Len(t, state.Locations, 1)
	assert.Equal(t, domain.ResolvedLocation{CityName: "Mumbai", CustomerCount: 5, Latitude: 19.07, Longitude: 72.87}, state.Locations[0])
}
