package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/insighting"
	"github.com/Gustavoss0406/ActiveCampaigns/pkg/apiErrors"
	"github.com/Gustavoss0406/ActiveCampaigns/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MetricsRequest struct {
	AccountID   string `json:"account_id"`
	AccessToken string `json:"access_token"`
}

func GetMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req MetricsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, http.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		if req.AccountID == "" || req.AccessToken == "" {
			apiErrors.WriteError(w, http.StatusBadRequest, "É necessário fornecer 'account_id' e 'access_token'.")
			return
		}

		logger.WithField("account_id", req.AccountID).Info("metrics: fetching account metrics")

		metrics, err := service.GetAccountMetrics(req.AccountID, req.AccessToken)
		if err != nil {
			handleMetricsError(w, logger, req.AccountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.AccountID,
				"error":      err.Error(),
			}).Error("metrics: failed to encode response")
		}
	})
}

func handleMetricsError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	var fetchErr *insighting.UpstreamFetchError

	switch {
	case errors.Is(err, insighting.ErrNoInsightData):
		logger.WithField("account_id", accountID).Warn("metrics: no insight data for account")
		apiErrors.WriteError(w, http.StatusNotFound, err.Error())

	case errors.As(err, &fetchErr):
		logger.WithFields(log.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("metrics: upstream fetch failed")
		apiErrors.WriteError(w, http.StatusBadGateway, err.Error())

	default:
		logger.WithFields(log.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("metrics: failed to get account metrics")
		apiErrors.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
