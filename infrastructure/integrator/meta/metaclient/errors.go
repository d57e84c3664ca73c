package metaclient

import (
	"errors"
	"fmt"
)

// ErrNoData indica que a API respondeu com sucesso porém com a lista "data" vazia.
var ErrNoData = errors.New("no data found")

// APIError representa uma resposta não-2xx da API do Meta, preservando o
// status e o corpo originais para diagnóstico e repasse ao cliente.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Erro %d: %s", e.StatusCode, e.Body)
}
