package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// FrontendOrigin is the single origin allowed to read API responses from a
// browser. The local frontend dev server runs here.
const FrontendOrigin = "http://localhost:3000"

// CORS returns a middleware granting the frontend origin full cross-origin
// access, credentials included. Any method and any request header is allowed
// from that origin. Requests from other origins are still served, but receive
// no Access-Control-Allow-* headers, so browsers keep scripts from reading
// the response.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{FrontendOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
