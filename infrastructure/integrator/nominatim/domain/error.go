package nominatimdomain

import "fmt"

// StatusError representa uma resposta do geocodificador com status diferente de 200
type StatusError struct {
	Query      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nominatim: busca por %q respondeu com status %d: %s", e.Query, e.StatusCode, e.Body)
}
