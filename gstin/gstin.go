package gstin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/business"
)

const (
	defaultBaseURL = "https://sheet.gstincheck.co.in/check"
	defaultTimeout = 15 * time.Second

	activeStatus = "Active"
)

var _ business.Service = &Client{}

// Client looks GSTINs up in the public registry. A registration that exists
// and is active is VERIFIED; anything the registry does not know about, or
// that is cancelled or suspended, is REJECTED.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type lookupResponse struct {
	Flag    bool           `json:"flag"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (c *Client) Lookup(ctx context.Context, taxID string) (business.LookupResult, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(taxID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return business.LookupResult{}, fmt.Errorf("gstin: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return business.LookupResult{}, fmt.Errorf("gstin: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return business.LookupResult{}, fmt.Errorf("gstin: request failed status=%d body=%s", resp.StatusCode, string(b))
	}

	var body lookupResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return business.LookupResult{}, fmt.Errorf("gstin: failed to decode response: %w", err)
	}

	if !body.Flag || body.Data == nil {
		return business.LookupResult{Status: business.REJECTED}, nil
	}

	status, _ := body.Data["sts"].(string)
	if !strings.EqualFold(status, activeStatus) {
		return business.LookupResult{Status: business.REJECTED, Payload: body.Data}, nil
	}

	return business.LookupResult{Status: business.VERIFIED, Payload: body.Data}, nil
}
