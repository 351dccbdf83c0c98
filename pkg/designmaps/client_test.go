package designmaps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_URL(t *testing.T) {
	req := Request{
		Standard:     "asce7-16",
		Latitude:     34,
		Longitude:    -118.25,
		RiskCategory: "III",
		SiteClass:    "C",
		Title:        "Example",
	}

	full, err := url.Parse(req.URL(DefaultBaseURL))
	require.NoError(t, err)

	assert.Equal(t, "/ws/designmaps/asce7-16.json", full.Path)
	q := full.Query()
	assert.Equal(t, "34", q.Get("latitude"))
	assert.Equal(t, "-118.25", q.Get("longitude"))
	assert.Equal(t, "III", q.Get("riskCategory"))
	assert.Equal(t, "C", q.Get("siteClass"))
	assert.Equal(t, "Example", q.Get("title"))
}

func TestClient_Fetch(t *testing.T) {
	const payload = `{"request": {"status": "success"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asce7-22.json", r.URL.Path)
		assert.Equal(t, "40.7", r.URL.Query().Get("latitude"))
		assert.Equal(t, "II", r.URL.Query().Get("riskCategory"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL + "/"}
	body, err := client.Fetch(context.Background(), Request{
		Standard:     "asce7-22",
		Latitude:     40.7,
		Longitude:    -74,
		RiskCategory: "II",
		SiteClass:    "D",
		Title:        "Example",
	})
	require.NoError(t, err)
	// The body must come back byte for byte for raw pass-through.
	assert.Equal(t, payload, string(body))
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL + "/"}
	_, err := client.Fetch(context.Background(), Request{Standard: "asce7-16"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &Client{BaseURL: srv.URL + "/"}
	_, err := client.Fetch(ctx, Request{Standard: "asce7-16"})
	require.Error(t, err)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidStandard("nehrp-2020"))
	assert.False(t, ValidStandard("asce7-99"))
	assert.True(t, ValidRiskCategory("IV"))
	assert.False(t, ValidRiskCategory("V"))
	assert.True(t, ValidSiteClass("D-default"))
	assert.False(t, ValidSiteClass("G"))
}
