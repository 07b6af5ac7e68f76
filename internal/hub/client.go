// Package hub talks to the model hub: a small metadata client for preflight
// checks and a snapshot fetch that delegates the transfer itself to the
// hfdownloader library.
package hub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/modelcrate/modelcrate/internal/config"
	"github.com/modelcrate/modelcrate/internal/version"
)

const (
	defaultEndpoint = "https://huggingface.co"
	maxRetries      = 3
	retryDelay      = 1 * time.Second
)

type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// ModelInfo is the subset of the hub's model API response we act on.
type ModelInfo struct {
	ModelId  string      `json:"modelId"`
	Author   string      `json:"author"`
	Private  bool        `json:"private"`
	Gated    GatedStatus `json:"gated"`
	Siblings []Sibling   `json:"siblings"`
}

type Sibling struct {
	RFileName string `json:"rfilename"`
	Size      int64  `json:"size"`
}

// GatedStatus handles the hub's "gated" field which can be bool or string.
type GatedStatus bool

func (g *GatedStatus) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*g = GatedStatus(b)
		return nil
	}
	// A string like "manual" or "auto" - treat as gated
	*g = true
	return nil
}

func NewClient(cfg *config.Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    cfg.Token,
	}
}

// Endpoint returns the hub base URL in effect, mirror override included.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", version.UserAgent())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		resp, err := c.httpClient.Do(req)
		if err == nil {
			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				time.Sleep(retryDelay * time.Duration(i+1))
				continue
			}
			return resp, nil
		}
		lastErr = err
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}

// GetModel fetches repository metadata for a model identifier. Used before a
// snapshot fetch so missing or gated repositories fail with a readable
// message instead of partway through a transfer.
func (c *Client) GetModel(modelID string) (*ModelInfo, error) {
	url := fmt.Sprintf("%s/api/models/%s", c.endpoint, modelID)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var model ModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, err
	}

	return &model, nil
}
