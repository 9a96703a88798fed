package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"holipass/infras/otel"
	"holipass/internal/domains/content/model"
	"holipass/internal/domains/content/repository"
	"holipass/shared/failure"
	"holipass/transport/http/middleware"
	"holipass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	content repository.Content
	otel    otel.Otel
}

func New(content repository.Content, ot otel.Otel) Handler {
	return Handler{
		content: content,
		otel:    ot,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContent)
		routerGroup.With(auth.AdminOnly).Post("/", handler.SaveContent)
	})
}

// GetContent serves the event page content. Never errors: the repository
// falls back to cached or default content when stores are unreachable.
func (handler *Handler) GetContent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".GetContent")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.content.GetContent(ctx))
}

// SaveContent merges the submitted partial content into what is stored;
// blank fields in the payload leave existing values untouched.
func (handler *Handler) SaveContent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".SaveContent")
	defer scope.End()

	partial := model.EventContent{}

	if err := json.NewDecoder(request.Body).Decode(&partial); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode content payload")

		response.WithError(writer, failure.BadRequestFromString("content payload must be a JSON object"))

		return
	}

	if !handler.content.SaveContent(ctx, partial) {
		response.WithError(writer, failure.InternalError(errors.New("content could not be saved to any store")))

		return
	}

	response.WithMessage(writer, http.StatusOK, "content saved")
}
