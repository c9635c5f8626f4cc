package api

import (
	"errors"
	"os"
	"strings"
)

func (s *Server) registerRoutes() error {
	if s == nil || s.router == nil {
		return nil
	}

	api := s.router.Group("/api")
	apiKey := strings.TrimSpace(os.Getenv("ANSWERBENCH_API_KEY"))
	if apiKey != "" {
		api.Use(apiKeyAuthMiddleware(apiKey))
	} else if strings.EqualFold(strings.TrimSpace(os.Getenv("ANSWERBENCH_DISABLE_AUTH")), "true") {
		// Explicitly allow unauthenticated access.
	} else {
		return errors.New("api: missing auth configuration: set ANSWERBENCH_API_KEY or set ANSWERBENCH_DISABLE_AUTH=true")
	}

	api.GET("/health", s.handleHealth)
	api.GET("/dataset", s.handleGetDataset)

	api.POST("/ask", s.handleAsk)
	api.POST("/evaluate", s.handleEvaluate)

	api.GET("/evals", s.handleListEvals)
	api.GET("/evals/:id", s.handleGetEval)

	return nil
}
