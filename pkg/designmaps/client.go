// Package designmaps fetches seismic design parameters from the USGS
// design maps web service.
package designmaps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the production service root.
const DefaultBaseURL = "https://earthquake.usgs.gov/ws/designmaps/"

// Standards lists the reference documents the service accepts.
var Standards = []string{
	"asce7-22", "asce7-16", "asce7-10", "asce7-05",
	"nehrp-2020", "nehrp-2015", "nehrp-2009",
	"ibc-2015", "ibc-2012",
	"aashto-2009",
}

// RiskCategories and SiteClasses enumerate the remaining query inputs.
var (
	RiskCategories = []string{"I", "II", "III", "IV"}
	SiteClasses    = []string{"A", "B", "C", "D", "D-default", "E", "F"}
)

// ValidStandard reports whether s is a known reference document.
func ValidStandard(s string) bool { return contains(Standards, s) }

// ValidRiskCategory reports whether s is a known risk category.
func ValidRiskCategory(s string) bool { return contains(RiskCategories, s) }

// ValidSiteClass reports whether s is a known site class.
func ValidSiteClass(s string) bool { return contains(SiteClasses, s) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Request describes one design-parameters query.
type Request struct {
	Standard     string
	Latitude     float64
	Longitude    float64
	RiskCategory string
	SiteClass    string
	Title        string
}

// URL renders the request as a full service URL:
// <base><standard>.json?<urlencoded parameters>.
func (r Request) URL(base string) string {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(r.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(r.Longitude, 'f', -1, 64))
	params.Set("riskCategory", r.RiskCategory)
	params.Set("siteClass", r.SiteClass)
	params.Set("title", r.Title)
	return base + r.Standard + ".json?" + params.Encode()
}

// Client fetches responses from the service. The zero value queries the
// production URL with http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Fetch performs the query and returns the raw response body. The body
// comes back untouched so callers can pass the JSON through
// unmodified.
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL(base), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch design parameters: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch design parameters: %s returned %s", req.Standard, resp.Status)
	}
	return body, nil
}
