package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/domain"
	"github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/metaclient"
	"github.com/Gustavoss0406/ActiveCampaigns/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/config"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/domain"
	"github.com/Gustavoss0406/ActiveCampaigns/internal/usecases/insighting"
)

func postMetrics(t *testing.T, service insighting.Insighter, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader(body))
	rec := httptest.NewRecorder()

	GetMetrics(service).ServeHTTP(rec, req)
	return rec
}

func TestGetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := insighting.NewService(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetAccountInsights("123", "tok").
		Return(&metadomain.AccountInsight{
			Impressions: "1000",
			Clicks:      "50",
			CPC:         "0.5",
			Spend:       "123.4",
			Actions: []metadomain.Action{
				{ActionType: "offsite_conversion", Value: "3"},
			},
		}, nil)

	mockClient.EXPECT().
		GetActiveCampaigns("123", "tok").
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha 1", Status: "ACTIVE"},
		}, nil)

	mockClient.EXPECT().
		GetCampaignInsights("c1", "tok").
		Return(&metadomain.CampaignInsight{Impressions: "200", Clicks: "10", CPC: "1.5"}, nil)

	rec := postMetrics(t, service, `{"account_id":"123","access_token":"tok"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var metrics domain.AccountMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))

	assert.Equal(t, 1, metrics.ActiveCampaigns)
	assert.Equal(t, "5.00%", metrics.CTR)
	assert.Equal(t, 3.0, metrics.Conversions)
	assert.Equal(t, "0.00%", metrics.ROI)
	assert.Equal(t, 1, metrics.RecentCampaignsTotal)
	require.Len(t, metrics.RecentCampaigns, 1)
	assert.Equal(t, "c1", metrics.RecentCampaigns[0].ID)
}

func TestGetMetrics_CamposObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao upstream deve acontecer
	mockClient := mocks.NewMockClient(ctrl)
	service := insighting.NewService(&config.Config{}, mockClient)

	tests := []struct {
		name string
		body string
	}{
		{name: "sem account_id", body: `{"access_token":"tok"}`},
		{name: "sem access_token", body: `{"account_id":"123"}`},
		{name: "corpo vazio", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postMetrics(t, service, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "account_id")
		})
	}
}

func TestGetMetrics_CorpoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := insighting.NewService(&config.Config{}, mockClient)

	rec := postMetrics(t, service, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMetrics_SemDadosDeInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := insighting.NewService(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetAccountInsights("123", "tok").
		Return(nil, metaclient.ErrNoData)

	mockClient.EXPECT().
		GetActiveCampaigns("123", "tok").
		Return(nil, nil)

	rec := postMetrics(t, service, `{"account_id":"123","access_token":"tok"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nenhum dado de insights encontrado.")
}

func TestGetMetrics_FalhaUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := insighting.NewService(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetAccountInsights("123", "tok").
		Return(nil, &metaclient.APIError{StatusCode: http.StatusInternalServerError, Body: "upstream exploded"})

	mockClient.EXPECT().
		GetActiveCampaigns("123", "tok").
		Return(nil, nil)

	rec := postMetrics(t, service, `{"account_id":"123","access_token":"tok"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// O texto do erro do upstream segue no detail para diagnóstico
	assert.Contains(t, rec.Body.String(), "upstream exploded")
}
