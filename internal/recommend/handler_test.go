package recommend

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	NewHandler(newTestService()).RegisterPublicRoutes(app)
	return app
}

func TestGetRecommendationsOK(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/v1/recommendations?personId=1&topN=5", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if result.PersonID != 1 {
		t.Fatalf("unexpected personId %d", result.PersonID)
	}
	if len(result.Items) == 0 || len(result.Items) > 5 {
		t.Fatalf("unexpected item count %d", len(result.Items))
	}
}

func TestGetRecommendationsInvalidPersonID(t *testing.T) {
	app := newTestApp()

	for _, target := range []string{
		"/api/v1/recommendations",
		"/api/v1/recommendations?personId=abc",
	} {
		req := httptest.NewRequest("GET", target, nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, res.StatusCode)
		}
	}
}

func TestGetRecommendationsInvalidTopN(t *testing.T) {
	app := newTestApp()

	for _, target := range []string{
		"/api/v1/recommendations?personId=1&topN=abc",
		"/api/v1/recommendations?personId=1&topN=-3",
		"/api/v1/recommendations?personId=1&topN=0",
	} {
		req := httptest.NewRequest("GET", target, nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, res.StatusCode)
		}
	}
}
