package nominatim

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	nominatimdomain "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/domain"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	// ErrNoCandidates indica que o geocodificador não encontrou nenhum resultado
	ErrNoCandidates = errors.New("nominatim: nenhum candidato encontrado")
	// ErrInvalidCoordinates indica latitude ou longitude que não puderam ser interpretadas
	ErrInvalidCoordinates = errors.New("nominatim: coordenadas inválidas")
)

// Geocoder converte o nome de uma cidade em coordenadas
type Geocoder interface {
	Geocode(ctx context.Context, cityName string) (domain.Coordinates, error)
}

type NominatimService struct {
	Client nominatimclient.Client
}

func New(client nominatimclient.Client) Geocoder {
	return &NominatimService{
		Client: client,
	}
}

// Geocode usa o primeiro candidato retornado. Uma lista vazia é tratada como erro.
func (s *NominatimService) Geocode(ctx context.Context, cityName string) (domain.Coordinates, error) {
	places, err := s.Client.Search(ctx, nominatimdomain.SearchParams{Query: cityName})
	if err != nil {
		return domain.Coordinates{}, err
	}

	if len(places) == 0 {
		return domain.Coordinates{}, errors.Wrapf(ErrNoCandidates, "cidade %q", cityName)
	}

	return parseCoordinates(places[0])
}

// parseCoordinates rejeita valores fora do intervalo, incluindo NaN (toda comparação com NaN é falsa)
func parseCoordinates(place nominatimdomain.Place) (domain.Coordinates, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(place.Lat), 64)
	if err != nil || !(lat >= -90 && lat <= 90) {
		return domain.Coordinates{}, errors.Wrapf(ErrInvalidCoordinates, "latitude %q", place.Lat)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(place.Lon), 64)
	if err != nil || !(lon >= -180 && lon <= 180) {
		return domain.Coordinates{}, errors.Wrapf(ErrInvalidCoordinates, "longitude %q", place.Lon)
	}

	return domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}
