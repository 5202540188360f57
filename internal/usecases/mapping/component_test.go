package mapping

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/mocks"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func testSettings() Settings {
	return Settings{
		Center:  domain.Coordinates{Latitude: 20.5937, Longitude: 78.9629},
		Zoom:    5,
		TileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		MaxZoom: 19,
		IconURL: "/icon/image.png",
		Limit:   8,
	}
}

func makeCities(n int) []domain.CityAggregate {
	cities := make([]domain.CityAggregate, 0, n)
	for i := 0; i < n; i++ {
		cities = append(cities, domain.CityAggregate{
			CityName:      fmt.Sprintf("Cidade %02d", i),
			CustomerCount: 100 - i,
		})
	}
	return cities
}

// coordsFor gera coordenadas determinísticas a partir do nome da cidade
func coordsFor(name string) domain.Coordinates {
	var sum int
	for _, r := range name {
		sum += int(r)
	}
	return domain.Coordinates{Latitude: float64(sum%90) + 0.5, Longitude: float64(sum%180) + 0.25}
}

func TestComponent_Resolve_LimitsLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geocoder := mocks.NewMockGeocoder(ctrl)

	var calls atomic.Int32
	geocoder.EXPECT().
		Geocode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cityName string) (domain.Coordinates, error) {
			calls.Add(1)
			return coordsFor(cityName), nil
		}).
		Times(8)

	component := NewComponent(geocoder, testSettings(), "map")
	cities := makeCities(12)

	err := component.Resolve(context.Background(), cities)
	require.NoError(t, err)

	state := component.State()
	assert.Equal(t, int32(8), calls.Load())
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.Len(t, state.Locations, 8)

	// Cada localização deve manter nome e contagem da cidade de origem, na mesma ordem
	for i, location := range state.Locations {
		coords := coordsFor(cities[i].CityName)
		assert.Equal(t, cities[i].CityName, location.CityName)
		assert.Equal(t, cities[i].CustomerCount, location.CustomerCount)
		assert.Equal(t, coords.Latitude, location.Latitude)
		assert.Equal(t, coords.Longitude, location.Longitude)
	}
}

func TestComponent_Resolve_FewerCitiesThanLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geocoder := mocks.NewMockGeocoder(ctrl)
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinates{Latitude: 1, Longitude: 2}, nil).Times(3)

	component := NewComponent(geocoder, testSettings(), "map")
	require.NoError(t, component.Resolve(context.Background(), makeCities(3)))

	assert.Len(t, component.State().Locations, 3)
}

func TestComponent_Resolve_FailureKeepsPreviousLocations(t *testing.T) {
	tests := []struct {
		name    string
		failErr error
	}{
		{name: "Erro de rede", failErr: errors.New("connection reset by peer")},
		{name: "Nenhum candidato encontrado", failErr: nominatim.ErrNoCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			geocoder := mocks.NewMockGeocoder(ctrl)

			// Primeira montagem: uma cidade resolvida com sucesso
			geocoder.EXPECT().
				Geocode(gomock.Any(), "Mumbai").
				Return(domain.Coordinates{Latitude: 19.07, Longitude: 72.87}, nil)

			component := NewComponent(geocoder, testSettings(), "map")
			component.Init()
			require.NoError(t, component.Resolve(context.Background(), []domain.CityAggregate{{CityName: "Mumbai", CustomerCount: 5}}))
			before := component.State()

			// Segunda lista: a quarta cidade falha
			cities := makeCities(10)
			geocoder.EXPECT().
				Geocode(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, cityName string) (domain.Coordinates, error) {
					if cityName == cities[3].CityName {
						return domain.Coordinates{}, tt.failErr
					}
					return coordsFor(cityName), nil
				}).
				MaxTimes(8)

			err := component.Resolve(context.Background(), cities)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.failErr)

			after := component.State()
			assert.False(t, after.Loading)
			assert.Equal(t, ErrorMessage, after.Error)
			assert.Equal(t, before.Locations, after.Locations)
			assert.Equal(t, before.Surface.Markers, after.Surface.Markers)
		})
	}
}

func TestComponent_Resolve_SuccessClearsPreviousError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geocoder := mocks.NewMockGeocoder(ctrl)
	gomock.InOrder(
		geocoder.EXPECT().Geocode(gomock.Any(), "Pune").Return(domain.Coordinates{}, errors.New("timeout")),
		geocoder.EXPECT().Geocode(gomock.Any(), "Pune").Return(domain.Coordinates{Latitude: 18.52, Longitude: 73.85}, nil),
	)

	component := NewComponent(geocoder, testSettings(), "map")
	cities := []domain.CityAggregate{{CityName: "Pune", CustomerCount: 2}}

	require.Error(t, component.Resolve(context.Background(), cities))
	assert.Equal(t, ErrorMessage, component.State().Error)

	require.NoError(t, component.Resolve(context.Background(), cities))
	state := component.State()
	assert.Empty(t, state.Error)
	assert.Len(t, state.Locations, 1)
}

func TestComponent_LoadingState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	started := make(chan struct{})

	geocoder := mocks.NewMockGeocoder(ctrl)
	geocoder.EXPECT().
		Geocode(gomock.Any(), "Delhi").
		DoAndReturn(func(ctx context.Context, cityName string) (domain.Coordinates, error) {
			close(started)
			<-release
			return domain.Coordinates{Latitude: 28.61, Longitude: 77.20}, nil
		})

	component := NewComponent(geocoder, testSettings(), "map")
	assert.True(t, component.State().Loading)

	done := make(chan error, 1)
	go func() {
		done <- component.Resolve(context.Background(), []domain.CityAggregate{{CityName: "Delhi", CustomerCount: 9}})
	}()

	<-started
	assert.True(t, component.State().Loading)
	assert.Empty(t, component.State().Locations)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Resolve não terminou")
	}

	assert.False(t, component.State().Loading)
}

func TestComponent_Init_Idempotent(t *testing.T) {
	component := NewComponent(nil, testSettings(), "map-abc")

	assert.True(t, component.Init())
	first := component.surface

	assert.False(t, component.Init())
	assert.Same(t, first, component.surface)

	state := component.State()
	require.NotNil(t, state.Surface)
	assert.Equal(t, "map-abc", state.Surface.ElementID)
	assert.Equal(t, domain.Coordinates{Latitude: 20.5937, Longitude: 78.9629}, state.Surface.Center)
	assert.Equal(t, 5, state.Surface.Zoom)
	require.Len(t, state.Surface.Tiles, 1)
	assert.Equal(t, 19, state.Surface.Tiles[0].MaxZoom)
	assert.Equal(t, [2]int{25, 41}, state.Surface.Icon.Size)
}

func TestComponent_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geocoder := mocks.NewMockGeocoder(ctrl)

	component := NewComponent(geocoder, testSettings(), "map")
	component.Init()
	component.Close()

	assert.Nil(t, component.State().Surface)
	assert.False(t, component.Init(), "um componente encerrado não recria o mapa")

	err := component.Resolve(context.Background(), makeCities(2))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestComponent_CloseDuringLookupDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	geocoder := mocks.NewMockGeocoder(ctrl)
	geocoder.EXPECT().
		Geocode(gomock.Any(), "Chennai").
		DoAndReturn(func(ctx context.Context, cityName string) (domain.Coordinates, error) {
			close(started)
			<-release
			return domain.Coordinates{Latitude: 13.08, Longitude: 80.27}, nil
		})

	component := NewComponent(geocoder, testSettings(), "map")
	component.Init()

	done := make(chan error, 1)
	go func() {
		done <- component.Resolve(context.Background(), []domain.CityAggregate{{CityName: "Chennai", CustomerCount: 1}})
	}()

	<-started
	component.Close()
	close(release)

	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Empty(t, component.State().Locations)
}

func TestComponent_RedrawMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geocoder := mocks.NewMockGeocoder(ctrl)
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, cityName string) (domain.Coordinates, error) {
			return coordsFor(cityName), nil
		}).AnyTimes()

	component := NewComponent(geocoder, testSettings(), "map")
	component.Init()

	require.NoError(t, component.Resolve(context.Background(), makeCities(5)))
	assert.Len(t, component.State().Surface.Markers, 5)

	// Uma nova lista substitui os marcadores anteriores em vez de acumulá-los
	require.NoError(t, component.Resolve(context.Background(), makeCities(2)))
	markers := component.State().Surface.Markers
	require.Len(t, markers, 2)
	for _, marker := range markers {
		assert.True(t, marker.OpenPopup)
	}
	assert.Equal(t, "Cidade 00: 100 customers", markers[0].Popup)
}

// TestComponent_MumbaiScenario exercita o caminho completo até o servidor de geocodificação
func TestComponent_MumbaiScenario(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Mumbai", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"19.07","lon":"72.87","display_name":"Mumbai, Maharashtra, India"}]`))
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Geocoder.URL = server.URL
	cfg.Geocoder.Timeout = 5 * time.Second
	cfg.Geocoder.Limit = 8
	cfg.Geocoder.UserAgent = "ecom-dashboard-test"

	geocoder := nominatim.New(nominatimclient.NewClient(cfg))
	component := NewComponent(geocoder, testSettings(), "map")
	component.Init()

	err := component.Resolve(context.Background(), []domain.CityAggregate{{CityName: "Mumbai", CustomerCount: 5}})
	require.NoError(t, err)

	state := component.State()
	require.Len(t, state.Surface.Markers, 1)

	marker := state.Surface.Markers[0]
	assert.Equal(t, domain.Coordinates{Latitude: 19.07, Longitude: 72.87}, marker.Position)
	assert.Equal(t, "Mumbai: 5 customers", marker.Popup)
	assert.True(t, marker.OpenPopup)
}
