package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
)

type ResponseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsights busca as métricas de uma única campanha para o período
// máximo disponível.
func (c *MetaClient) GetCampaignInsights(campaignID string, accessToken string) (*metadomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "impressions,clicks,ctr,cpc")
	params.Add("date_preset", "maximum")
	params.Add("access_token", accessToken)

	body, err := c.doRequest(http.MethodGet, baseURL, params)
	if err != nil {
		return nil, err
	}

	var response ResponseCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, ErrNoData
	}

	return &response.Data[0], nil
}
