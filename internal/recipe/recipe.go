package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Generator produces free-form recipe text from the recommended product
// names plus the full catalog. The text logic lives behind this interface;
// the backend only assembles its inputs.
type Generator interface {
	Generate(ctx context.Context, recommended, catalog []string) (string, error)
}

var ErrNotConfigured = errors.New("recipe generator not configured")

// HTTPGenerator calls an external text-generation endpoint.
type HTTPGenerator struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPGenerator(url, apiKey string) *HTTPGenerator {
	return &HTTPGenerator{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Recommended []string `json:"recommended"`
	Catalog     []string `json:"catalog"`
}

type generateResponse struct {
	Recipe string `json:"recipe"`
}

func (g *HTTPGenerator) Generate(ctx context.Context, recommended, catalog []string) (string, error) {
	if g.url == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{Recommended: recommended, Catalog: catalog})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recipe endpoint returned %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	return out.Recipe, nil
}
