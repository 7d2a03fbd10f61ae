package v0

import (
	"net/http"

	_ "github.com/swaggo/files"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quanb-duy/gooddata-go-sdk/internal/docs"
)

// SwaggerHandler returns a handler that serves the Swagger UI
func SwaggerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// When accessed directly, redirect to the UI path
		if r.URL.Path == "/v0/swagger" {
			http.Redirect(w, r, "/v0/swagger/", http.StatusFound)
			return
		}

		handler := httpSwagger.Handler(
			httpSwagger.URL("/v0/swagger/doc.yaml"),
			httpSwagger.DeepLinking(true),
		)

		handler.ServeHTTP(w, r)
	}
}

// SwaggerDocHandler serves the bundled OpenAPI document
func SwaggerDocHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(docs.OpenAPI)
	}
}
