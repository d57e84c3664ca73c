package insighting

import (
	"github.com/Gustavoss0406/ActiveCampaigns/internal/domain"
)

// Insighter define a interface para agregar as métricas de uma conta de anúncios
type Insighter interface {
	// GetAccountMetrics agrega as métricas da conta e o resumo de cada
	// campanha ativa, usando o access token fornecido pelo chamador
	GetAccountMetrics(accountID string, accessToken string) (*domain.AccountMetrics, error)
}
