package domain

// AccountMetrics é a resposta do endpoint /metrics: métricas agregadas da
// conta mais o resumo de cada campanha ativa.
type AccountMetrics struct {
	ActiveCampaigns      int                `json:"active_campaigns"`
	Impressions          int                `json:"impressions"`
	Clicks               int                `json:"clicks"`
	CTR                  string             `json:"ctr"`
	Conversions          float64            `json:"conversions"`
	AverageCPC           string             `json:"average_cpc"`
	ROI                  string             `json:"roi"`
	TotalSpent           string             `json:"total_spent"`
	RecentCampaignsTotal int                `json:"recent_campaigns_total"`
	RecentCampaigns      []*CampaignSummary `json:"recent_campaigns"`
}
