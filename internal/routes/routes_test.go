package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	appmiddleware "github.com/janisto/hello-api/internal/middleware"
	"github.com/janisto/hello-api/internal/respond"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)

	cfg := huma.DefaultConfig("RoutesTest", "test")
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)
	Register(api)
	return router
}

func TestHelloRouteReturnsFixedGreeting(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected exactly one key in body, got %v", body)
	}
	if body["message"] != Greeting {
		t.Fatalf("expected message %q, got %v", Greeting, body["message"])
	}
}

func TestHelloRouteIsIdempotent(t *testing.T) {
	router := testRouter(t)

	var first string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i, resp.Code)
		}
		if i == 0 {
			first = resp.Body.String()
			continue
		}
		if resp.Body.String() != first {
			t.Fatalf("call %d: body changed between calls: %q vs %q", i, resp.Body.String(), first)
		}
	}
}

func TestHealthRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}

	var health HealthData
	if err := json.Unmarshal(resp.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if health.Message != "healthy" {
		t.Fatalf("expected message 'healthy', got %q", health.Message)
	}
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
