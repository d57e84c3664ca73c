package metadomain

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Status de campanha aceitos pelo endpoint de atualização do Meta
const (
	CampaignStatusActive = "ACTIVE"
	CampaignStatusPaused = "PAUSED"
)

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
