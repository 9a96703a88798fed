package middleware

import (
	"context"
	"net/http"
	"strings"

	"holipass/infras/jwt"
	"holipass/infras/otel"
	"holipass/shared/constant"
	"holipass/shared/failure"
	"holipass/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards the admin surface: a valid bearer access token carrying the
// admin role is required on every request it wraps.
type Auth interface {
	AdminOnly(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, ot otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       ot,
	}
}

func (a *authImpl) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := a.otel.NewScope(r.Context(), otel.ScopeHTTP, otel.ScopeHTTP+".AdminOnly")
		defer scope.End()

		token, ok := bearerToken(r)
		if !ok {
			response.WithError(w, failure.Unauthorized("missing bearer token"))

			return
		}

		claims, err := a.jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("rejected admin request with invalid token")

			response.WithError(w, failure.Unauthorized("invalid or expired token"))

			return
		}

		if claims.Role != constant.RoleAdmin {
			response.WithError(w, failure.Unauthorized("admin access required"))

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(constant.RequestHeaderAuthorization)

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])

	return token, token != ""
}
