package ecommercedomain

import "fmt"

// StatusError representa uma resposta da API com status diferente de 200
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ecommerce: %s respondeu com status %d: %s", e.Path, e.StatusCode, e.Body)
}
