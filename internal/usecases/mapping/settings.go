package mapping

import (
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
)

// DefaultLimit é a cota de cidades geocodificadas por montagem
const DefaultLimit = 8

// Settings reúne o que o componente precisa para criar o mapa e limitar as buscas
type Settings struct {
	Center  domain.Coordinates
	Zoom    int
	TileURL string
	MaxZoom int
	IconURL string
	Limit   int
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Center: domain.Coordinates{
			Latitude:  cfg.Map.CenterLat,
			Longitude: cfg.Map.CenterLon,
		},
		Zoom:    cfg.Map.Zoom,
		TileURL: cfg.Map.TileURL,
		MaxZoom: cfg.Map.MaxZoom,
		IconURL: cfg.Map.MarkerIconURL,
		Limit:   cfg.Geocoder.Limit,
	}
}

func (s Settings) limit() int {
	if s.Limit <= 0 {
		return DefaultLimit
	}
	return s.Limit
}

// markerIcon mantém as dimensões do ícone padrão do Leaflet
func (s Settings) markerIcon() domain.MarkerIcon {
	return domain.MarkerIcon{
		URL:         s.IconURL,
		Size:        [2]int{25, 41},
		Anchor:      [2]int{12, 41},
		PopupAnchor: [2]int{1, -34},
	}
}
