package auth

import (
	"net/http"

	"holipass/infras/otel"
	"holipass/internal/domains/auth/model/dto"
	"holipass/internal/domains/auth/service"
	"holipass/shared/validator"
	"holipass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(svc service.Auth, ot otel.Otel) Handler {
	return Handler{
		service: svc,
		otel:    ot,
	}
}

func (handler *Handler) Router(router chi.Router, limiter func(http.Handler) http.Handler) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.With(limiter).Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)
	})
}

// Login exchanges admin credentials for a token pair.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	resp, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Str("username", req.Username).Msg("failed login attempt")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, resp)
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (handler *Handler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	resp, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, resp)
}
