package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"cdms/internal/auth"
	"cdms/internal/http/middleware"
	"cdms/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; services are injected.
//
// Document reads are deliberately open; create/update/delete require a
// bearer token. The asymmetry matches the browsing-first usage of the
// system.
func RegisterRoutes(app *fiber.App, db *sql.DB, authSvc service.AuthService, docSvc service.DocumentService, tokens *auth.TokenManager) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Readiness (DB-checked) and liveness probes
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Post("/auth/register", RegisterUser(authSvc))
	api.Post("/auth/login", LoginUser(authSvc))

	requireAuth := middleware.RequireAuth(tokens)

	api.Get("/documents", ListDocuments(docSvc))
	api.Get("/documents/:id", GetDocument(docSvc))
	api.Get("/documents/:id/download", DownloadDocument(docSvc))
	api.Post("/documents", requireAuth, UploadDocument(docSvc))
	api.Put("/documents/:id", requireAuth, UpdateDocument(docSvc))
	api.Delete("/documents/:id", requireAuth, DeleteDocument(docSvc))
}
