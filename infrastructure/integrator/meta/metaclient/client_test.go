package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gustavoss0406/ActiveCampaigns/internal/config"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{
		Meta: config.Meta{
			URL:            serverURL,
			RequestTimeout: time.Second,
		},
	}
	return NewClient(cfg).(*MetaClient)
}

func TestGetAccountInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/insights", r.URL.Path)
		assert.Equal(t, "impressions,clicks,ctr,spend,cpc,actions", r.URL.Query().Get("fields"))
		assert.Equal(t, "maximum", r.URL.Query().Get("date_preset"))
		assert.Equal(t, "tok", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"impressions":"1000","clicks":"50","spend":"12.5","cpc":"0.25","actions":[{"action_type":"offsite_conversion","value":"3"}]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	insight, err := client.GetAccountInsights("123", "tok")
	require.NoError(t, err)
	assert.Equal(t, "1000", insight.Impressions)
	assert.Equal(t, "50", insight.Clicks)
	assert.Equal(t, "12.5", insight.Spend)
	assert.Len(t, insight.Actions, 1)
}

func TestGetAccountInsights_SemDados(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAccountInsights("123", "tok")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGetAccountInsights_ErroUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAccountInsights("123", "tok")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)
	assert.Contains(t, apiErr.Error(), "Erro 500")
}

func TestGetActiveCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/campaigns", r.URL.Path)
		assert.Equal(t, "id,name,status", r.URL.Query().Get("fields"))
		assert.JSONEq(t,
			`[{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`,
			r.URL.Query().Get("filtering"),
		)

		w.Write([]byte(`{"data":[{"id":"c1","name":"Campanha 1","status":"ACTIVE"},{"id":"c2","name":"Campanha 2","status":"ACTIVE"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.GetActiveCampaigns("123", "tok")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "Campanha 1", campaigns[0].Name)
}

func TestGetActiveCampaigns_ListaVazia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.GetActiveCampaigns("123", "tok")
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestUpdateCampaignStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/c1", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "PAUSED", r.PostForm.Get("status"))
		assert.Equal(t, "tok", r.PostForm.Get("access_token"))

		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.UpdateCampaignStatus("c1", "tok", "PAUSED")
	assert.NoError(t, err)
}

func TestUpdateCampaignStatus_RepassaStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`Forbidden`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.UpdateCampaignStatus("c1", "tok", "PAUSED")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Forbidden", apiErr.Body)
}

func TestDoRequest_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Meta: config.Meta{
			URL:            server.URL,
			RequestTimeout: 50 * time.Millisecond,
		},
	}
	client := NewClient(cfg).(*MetaClient)

	_, err := client.GetAccountInsights("123", "tok")
	require.Error(t, err)

	// Falha de transporte não carrega status HTTP
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
