package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/janisto/hello-api/internal/middleware"
)

// Greeting is the fixed message returned by the hello endpoint. The frontend
// displays it verbatim.
const Greeting = "Hello from Python!"

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	registerHealth(api)
	registerHello(api)
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		return &HealthOutput{Body: HealthData{Message: "healthy"}}, nil
	})
}

// HelloData models the response payload for the hello route.
type HelloData struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from Python!"`
}

// HelloOutput is the response wrapper for the hello endpoint.
type HelloOutput struct {
	Body HelloData
}

func registerHello(api huma.API) {
	huma.Get(api, "/api/hello", func(ctx context.Context, _ *struct{}) (*HelloOutput, error) {
		appmiddleware.LogInfo(ctx, "hello get", zap.String("path", "/api/hello"))
		return &HelloOutput{Body: HelloData{Message: Greeting}}, nil
	})
}
