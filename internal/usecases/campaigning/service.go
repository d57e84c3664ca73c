package campaigning

import (
	"github.com/sirupsen/logrus"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
	"github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/metaclient"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/config"
)

// CampaignManager define a interface para pausar e reativar campanhas
type CampaignManager interface {
	PauseCampaign(campaignID string, accessToken string) error
	ResumeCampaign(campaignID string, accessToken string) error
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

// NewService cria uma nova instância do serviço de controle de campanhas
func NewService(cfg *config.Config, client metaclient.Client) CampaignManager {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// PauseCampaign pausa uma campanha ativa
func (s *Service) PauseCampaign(campaignID string, accessToken string) error {
	if err := s.client.UpdateCampaignStatus(campaignID, accessToken, metadomain.CampaignStatusPaused); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("campaigns: failed to pause campaign")

		return err
	}

	logrus.WithField("campaign_id", campaignID).Infof("Campanha %s pausada", campaignID)
	return nil
}

// ResumeCampaign reativa (coloca em ACTIVE) uma campanha pausada
func (s *Service) ResumeCampaign(campaignID string, accessToken string) error {
	if err := s.client.UpdateCampaignStatus(campaignID, accessToken, metadomain.CampaignStatusActive); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("campaigns: failed to resume campaign")

		return err
	}

	logrus.WithField("campaign_id", campaignID).Infof("Campanha %s reativada", campaignID)
	return nil
}
