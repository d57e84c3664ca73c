package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
)

// UpdateCampaignStatus altera o status de uma campanha (ACTIVE ou PAUSED).
// Uma resposta não-2xx do Meta retorna como *APIError com status e corpo
// originais.
func (c *MetaClient) UpdateCampaignStatus(campaignID string, accessToken string, status string) error {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("status", status)
	params.Add("access_token", accessToken)

	_, err := c.doRequest(http.MethodPost, baseURL, params)
	return err
}
