package metadomain

// A API do Meta retorna os valores numéricos de insights como strings.

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// ActionTypeOffsiteConversion é o único tipo de ação somado como conversão.
const ActionTypeOffsiteConversion = "offsite_conversion"

type AccountInsight struct {
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	CTR         string   `json:"ctr"`
	Spend       string   `json:"spend"`
	CPC         string   `json:"cpc"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

type CampaignInsight struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}
