package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

type campaignFilter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) GetActiveCampaigns(accountID string, accessToken string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	filtering, err := json.Marshal([]campaignFilter{{
		Field:    "effective_status",
		Operator: "IN",
		Value:    []string{metadomain.CampaignStatusActive},
	}})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("filtering", string(filtering))
	params.Add("access_token", accessToken)

	body, err := c.doRequest(http.MethodGet, baseURL, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdCampaign
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	// Conta sem campanhas ativas não é erro: lista vazia.
	return response.Data, nil
}
