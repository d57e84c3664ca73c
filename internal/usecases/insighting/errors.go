package insighting

import (
	"errors"
	"fmt"
)

// ErrNoInsightData indica que o Meta respondeu sem nenhuma linha de insights
// para a conta
var ErrNoInsightData = errors.New("Nenhum dado de insights encontrado.")

// UpstreamFetchError indica falha em uma das buscas de topo (insights da
// conta ou lista de campanhas ativas), que são indispensáveis para a resposta
type UpstreamFetchError struct {
	Err error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("erro durante requisições: %s", e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}
