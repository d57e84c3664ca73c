package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
)

type ResponseAccountInsights struct {
	Data   []metadomain.AccountInsight `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

// GetAccountInsights busca as métricas agregadas da conta de anúncios para o
// período máximo disponível.
func (c *MetaClient) GetAccountInsights(accountID string, accessToken string) (*metadomain.AccountInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "impressions,clicks,ctr,spend,cpc,actions")
	params.Add("date_preset", "maximum")
	params.Add("access_token", accessToken)

	body, err := c.doRequest(http.MethodGet, baseURL, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAccountInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, ErrNoData
	}

	return &response.Data[0], nil
}
