package insighting

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
	"github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/metaclient"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/config"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/domain"
	"github.com/Gustavoss0406/ActiveCampaigns/pkg/utils"
)

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, client metaclient.Client) Insighter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// GetAccountMetrics agrega as métricas da conta: duas buscas de topo em
// paralelo (insights da conta e campanhas ativas), seguidas do fan-out de
// insights por campanha.
func (s *Service) GetAccountMetrics(accountID string, accessToken string) (*domain.AccountMetrics, error) {
	start := time.Now()
	logrus.WithField("account_id", accountID).Debug("insights: starting account metrics aggregation")

	var (
		insight      *metadomain.AccountInsight
		campaigns    []metadomain.Campaign
		insightErr   error
		campaignsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		insight, insightErr = s.client.GetAccountInsights(accountID, accessToken)
	}()

	go func() {
		defer wg.Done()
		campaigns, campaignsErr = s.client.GetActiveCampaigns(accountID, accessToken)
	}()

	wg.Wait()

	// Falhas reais de qualquer uma das buscas têm precedência sobre a
	// ausência de dados de insights.
	if insightErr != nil && !errors.Is(insightErr, metaclient.ErrNoData) {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      insightErr.Error(),
		}).Error("insights: failed to get account insights")

		return nil, &UpstreamFetchError{Err: insightErr}
	}

	if campaignsErr != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      campaignsErr.Error(),
		}).Error("insights: failed to get active campaigns")

		return nil, &UpstreamFetchError{Err: campaignsErr}
	}

	if insightErr != nil {
		logrus.WithField("account_id", accountID).Warn("insights: no insight data for account")
		return nil, ErrNoInsightData
	}

	impressions := utils.ParseMetaNumber(insight.Impressions)
	clicks := utils.ParseMetaNumber(insight.Clicks)

	var ctr float64
	if impressions > 0 {
		ctr = clicks / impressions * 100
	}

	metrics := &domain.AccountMetrics{
		ActiveCampaigns: len(campaigns),
		Impressions:     int(impressions),
		Clicks:          int(clicks),
		CTR:             utils.FormatPercentage(ctr),
		Conversions:     sumConversions(insight.Actions),
		AverageCPC:      utils.FormatCurrency(utils.ParseMetaNumber(insight.CPC)),
		// O ROI nunca é calculado a partir do upstream; o painel espera o
		// valor fixo.
		ROI:        "0.00%",
		TotalSpent: utils.FormatCurrency(utils.ParseMetaNumber(insight.Spend)),
	}

	// Fan-out: uma goroutine por campanha, aguardando todas terminarem.
	// Cada posição do slice pertence a uma única goroutine.
	summaries := make([]*domain.CampaignSummary, len(campaigns))

	fanout := sync.WaitGroup{}
	for i, campaign := range campaigns {
		fanout.Add(1)

		go func(i int, campaign metadomain.Campaign) {
			defer fanout.Done()
			summaries[i] = s.campaignSummary(campaign, accessToken)
		}(i, campaign)
	}
	fanout.Wait()

	metrics.RecentCampaignsTotal = len(summaries)
	metrics.RecentCampaigns = summaries

	logrus.WithFields(logrus.Fields{
		"account_id":       accountID,
		"active_campaigns": metrics.ActiveCampaigns,
		"elapsed_ms":       time.Since(start).Milliseconds(),
	}).Debug("insights: account metrics aggregation completed")

	return metrics, nil
}

// campaignSummary nunca falha para fora: qualquer erro na busca de insights
// da campanha é logado e o resumo zerado é retornado no lugar.
func (s *Service) campaignSummary(campaign metadomain.Campaign, accessToken string) *domain.CampaignSummary {
	summary := domain.NewZeroedCampaignSummary(campaign.ID, campaign.Name)

	insight, err := s.client.GetCampaignInsights(campaign.ID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("insights: failed to get campaign insights")

		return summary
	}

	impressions := utils.ParseMetaNumber(insight.Impressions)
	clicks := utils.ParseMetaNumber(insight.Clicks)

	var ctr float64
	if impressions > 0 {
		ctr = clicks / impressions * 100
	}

	summary.Impressions = int(impressions)
	summary.Clicks = int(clicks)
	summary.CTR = utils.FormatPercentage(ctr)
	summary.CPC = utils.FormatCurrency(utils.ParseMetaNumber(insight.CPC))

	return summary
}

// sumConversions soma os valores das ações do tipo offsite_conversion.
// Valores não numéricos são ignorados.
func sumConversions(actions []metadomain.Action) float64 {
	var total float64

	for _, action := range actions {
		if action.ActionType != metadomain.ActionTypeOffsiteConversion {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("insights: error converting action value to float")
			continue
		}

		total += value
	}

	return total
}
