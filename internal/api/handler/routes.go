package handler

import (
	"net/http"

	"github.com/Gustavoss0406/ActiveCampaigns/internal/api/handler/router"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/campaigning"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodPost,
			Handler: GetMetrics(service),
		},
	}
}

func Campaigns(service campaigning.CampaignManager) []router.Route {
	return []router.Route{
		{
			Path:    "/pause_campaign",
			Method:  http.MethodPost,
			Handler: PauseCampaign(service),
		},
		{
			Path:    "/resume_campaign",
			Method:  http.MethodPost,
			Handler: ResumeCampaign(service),
		},
	}
}
