package domain

// TileLayer descreve a camada de blocos do mapa
type TileLayer struct {
	URL     string `json:"url"`
	MaxZoom int    `json:"max_zoom"`
}

// MarkerIcon descreve o ícone usado pelos marcadores
type MarkerIcon struct {
	URL         string `json:"url"`
	Size        [2]int `json:"size"`
	Anchor      [2]int `json:"anchor"`
	PopupAnchor [2]int `json:"popup_anchor"`
}

// Marker é um marcador posicionado no mapa
type Marker struct {
	Position  Coordinates `json:"position"`
	Popup     string      `json:"popup"`
	OpenPopup bool        `json:"open_popup"`
}

// MapSurface é o estado de uma instância de mapa: centro, zoom, camada e marcadores
type MapSurface struct {
	ElementID string      `json:"element_id"`
	Center    Coordinates `json:"center"`
	Zoom      int         `json:"zoom"`
	Tiles     []TileLayer `json:"tiles"`
	Icon      MarkerIcon  `json:"icon"`
	Markers   []Marker    `json:"markers"`
}

// MapState é a cópia do estado do componente de mapa usada para renderização
type MapState struct {
	Loading   bool               `json:"loading"`
	Error     string             `json:"error,omitempty"`
	Locations []ResolvedLocation `json:"locations"`
	Surface   *MapSurface        `json:"surface,omitempty"`
}
