// Package nominatimdomain contém os formatos de resposta do serviço de geocodificação Nominatim
package nominatimdomain

// Place é um candidato retornado por /search. Latitude e longitude chegam como texto.
type Place struct {
	PlaceID     int64   `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Class       string  `json:"class,omitempty"`
	Type        string  `json:"type,omitempty"`
	Importance  float64 `json:"importance,omitempty"`
}

type SearchParams struct {
	Query string
}
