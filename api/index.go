package handler

import (
	"net/http"

	"holipass/config"
	"holipass/di"
	"holipass/shared/logger"
)

// Handler is the serverless entrypoint. Cold starts pay for dependency
// construction; warm invocations reuse process-level singletons.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor()(w, r)
}
