// Package mapping resolve as coordenadas das cidades com mais clientes e mantém o mapa exibido no painel
package mapping

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
	"github.com/vfg2006/ecom-dashboard/pkg/log"
	"github.com/vfg2006/ecom-dashboard/pkg/metrics"
)

// ErrorMessage é a mensagem exibida quando alguma busca de coordenadas falha
const ErrorMessage = "Failed to fetch locations. Please try again later."

var ErrClosed = errors.New("mapping: componente encerrado")

// Component guarda o estado do mapa de uma montagem do painel.
// A superfície do mapa pertence exclusivamente a ele e nunca é compartilhada.
type Component struct {
	geocoder  nominatim.Geocoder
	settings  Settings
	elementID string

	mu        sync.Mutex
	loading   bool
	err       string
	locations []domain.ResolvedLocation
	surface   *domain.MapSurface
	closed    bool
}

func NewComponent(geocoder nominatim.Geocoder, settings Settings, elementID string) *Component {
	return &Component{
		geocoder:  geocoder,
		settings:  settings,
		elementID: elementID,
		loading:   true,
		locations: []domain.ResolvedLocation{},
	}
}

// Init cria a superfície do mapa. Se ela já existir, não faz nada e retorna false.
func (c *Component) Init() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.surface != nil || c.closed {
		return false
	}

	c.surface = &domain.MapSurface{
		ElementID: c.elementID,
		Center:    c.settings.Center,
		Zoom:      c.settings.Zoom,
		Tiles: []domain.TileLayer{
			{URL: c.settings.TileURL, MaxZoom: c.settings.MaxZoom},
		},
		Icon:    c.settings.markerIcon(),
		Markers: []domain.Marker{},
	}
	c.redrawMarkers()

	return true
}

// Close descarta a superfície. Buscas ainda em andamento não alteram mais o estado.
func (c *Component) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface = nil
	c.closed = true
}

// Resolve geocodifica as primeiras cidades da lista em paralelo. Ou todas as buscas
// dão certo e as localizações são substituídas, ou nada muda além da mensagem de erro.
func (c *Component) Resolve(ctx context.Context, cities []domain.CityAggregate) error {
	limited := cities
	if len(limited) > c.settings.limit() {
		limited = limited[:c.settings.limit()]
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	results, err := c.lookup(ctx, limited)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.loading = false
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"cities": len(limited),
		}).Error("mapping: erro ao buscar coordenadas das cidades")

		c.err = ErrorMessage
		return err
	}

	c.locations = results
	c.redrawMarkers()

	return nil
}

// lookup dispara uma busca por cidade e cancela as demais na primeira falha
func (c *Component) lookup(ctx context.Context, cities []domain.CityAggregate) ([]domain.ResolvedLocation, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]domain.ResolvedLocation, len(cities))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for i, city := range cities {
		wg.Add(1)
		go func(i int, city domain.CityAggregate) {
			defer wg.Done()

			coords, err := c.geocoder.Geocode(ctx, city.CityName)
			metrics.ObserveGeocode(err)
			if err != nil {
				errOnce.Do(func() {
					firstErr = errors.Wrapf(err, "mapping: cidade %q", city.CityName)
					cancel()
				})
				return
			}

			results[i] = city.Resolve(coords)
		}(i, city)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

// redrawMarkers remove todos os marcadores e cria um por localização. Deve ser chamado com o mutex travado.
func (c *Component) redrawMarkers() {
	if c.surface == nil {
		return
	}

	markers := make([]domain.Marker, 0, len(c.locations))
	for _, location := range c.locations {
		markers = append(markers, domain.Marker{
			Position: domain.Coordinates{
				Latitude:  location.Latitude,
				Longitude: location.Longitude,
			},
			Popup:     PopupText(location),
			OpenPopup: true,
		})
	}

	c.surface.Markers = markers
}

// State retorna uma cópia do estado atual para renderização
func (c *Component) State() domain.MapState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := domain.MapState{
		Loading:   c.loading,
		Error:     c.err,
		Locations: slices.Clone(c.locations),
	}

	if c.surface != nil {
		surface := *c.surface
		surface.Tiles = slices.Clone(c.surface.Tiles)
		surface.Markers = slices.Clone(c.surface.Markers)
		state.Surface = &surface
	}

	return state
}

func PopupText(location domain.ResolvedLocation) string {
	return fmt.Sprintf("%s: %d customers", location.CityName, location.CustomerCount)
}
