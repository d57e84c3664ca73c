package metaclient

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAccountInsights(accountID string, accessToken string) (*metadomain.AccountInsight, error)
	GetActiveCampaigns(accountID string, accessToken string) ([]metadomain.Campaign, error)
	GetCampaignInsights(campaignID string, accessToken string) (*metadomain.CampaignInsight, error)
	UpdateCampaignStatus(campaignID string, accessToken string, status string) error
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
	}
}

// doRequest executa uma única chamada contra a API do Meta. Não há retries:
// uma falha é terminal para a chamada.
func (c *MetaClient) doRequest(method string, rawURL string, params url.Values) ([]byte, error) {
	start := time.Now()

	// TODO: redigir o access_token dos logs de debug
	logrus.WithFields(logrus.Fields{
		"method": method,
		"url":    rawURL,
		"params": params.Encode(),
	}).Debug("meta: iniciando requisição")

	var req *http.Request
	var err error

	if method == http.MethodGet {
		req, err = http.NewRequest(method, rawURL+"?"+params.Encode(), nil)
	} else {
		req, err = http.NewRequest(method, rawURL, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	logrus.WithFields(logrus.Fields{
		"method":      method,
		"url":         rawURL,
		"status_code": resp.StatusCode,
		"elapsed_ms":  time.Since(start).Milliseconds(),
	}).Debug("meta: requisição concluída")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logAPIError(rawURL, resp.StatusCode, body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// logAPIError tenta decodificar o envelope de erro da API do Meta para
// enriquecer o log. O corpo bruto segue no APIError de qualquer forma.
func logAPIError(rawURL string, statusCode int, body []byte) {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		logrus.WithFields(logrus.Fields{
			"url":         rawURL,
			"status_code": statusCode,
		}).Error("meta: resposta de erro da API")
		return
	}

	logrus.WithFields(logrus.Fields{
		"url":         rawURL,
		"status_code": statusCode,
		"error_type":  errResp.Error.Type,
		"error_code":  errResp.Error.Code,
		"fbtrace_id":  errResp.Error.FBTraceID,
	}).Error("meta: ", errResp.Error.Message)
}
