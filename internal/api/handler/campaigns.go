package handler

import (
	"errors"
	"net/http"

	"github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/metaclient"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/campaigning"
	"github.com/Gustavoss0406/ActiveCampaigns/pkg/apiErrors"
	"github.com/Gustavoss0406/ActiveCampaigns/pkg/log"
)

type CampaignActionRequest struct {
	CampaignID  string `json:"campaign_id"`
	AccessToken string `json:"access_token"`
}

type CampaignActionResponse struct {
	Success    bool   `json:"success"`
	CampaignID string `json:"campaign_id"`
}

// PauseCampaign pausa uma campanha do Meta Ads
func PauseCampaign(service campaigning.CampaignManager) http.Handler {
	return campaignActionHandler(func(campaignID string, accessToken string) error {
		return service.PauseCampaign(campaignID, accessToken)
	})
}

// ResumeCampaign reativa (coloca em ACTIVE) uma campanha pausada do Meta Ads
func ResumeCampaign(service campaigning.CampaignManager) http.Handler {
	return campaignActionHandler(func(campaignID string, accessToken string) error {
		return service.ResumeCampaign(campaignID, accessToken)
	})
}

func campaignActionHandler(action func(campaignID string, accessToken string) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CampaignActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, http.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		if req.CampaignID == "" || req.AccessToken == "" {
			apiErrors.WriteError(w, http.StatusBadRequest, "Faltando 'campaign_id' ou 'access_token'.")
			return
		}

		if err := action(req.CampaignID, req.AccessToken); err != nil {
			// Resposta não-2xx do Meta é repassada ao cliente com o mesmo
			// status e corpo
			var apiErr *metaclient.APIError
			if errors.As(err, &apiErr) {
				apiErrors.WriteError(w, apiErr.StatusCode, apiErr.Body)
				return
			}

			logger.WithFields(log.Fields{
				"campaign_id": req.CampaignID,
				"error":       err.Error(),
			}).Error("campaigns: failed to update campaign status")

			apiErrors.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CampaignActionResponse{
			Success:    true,
			CampaignID: req.CampaignID,
		}); err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": req.CampaignID,
				"error":       err.Error(),
			}).Error("campaigns: failed to encode response")
		}
	})
}
