package domain

// CampaignSummary resume as métricas de uma campanha ativa. Quando a busca
// de insights da campanha falha, os campos de métrica permanecem zerados.
type CampaignSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
}

// NewZeroedCampaignSummary cria o resumo padrão de uma campanha, com métricas
// zeradas e apenas id e nome preenchidos.
func NewZeroedCampaignSummary(id string, name string) *CampaignSummary {
	return &CampaignSummary{
		ID:   id,
		Name: name,
		CTR:  "0.00%",
		CPC:  "0.00",
	}
}
