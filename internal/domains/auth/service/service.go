package service

import (
	"context"
	"fmt"

	"holipass/config"
	"holipass/infras/jwt"
	"holipass/infras/otel"
	"holipass/internal/domains/auth/model/dto"
	"holipass/shared/constant"
	"holipass/shared/failure"
	"holipass/shared/password"

	"github.com/rs/zerolog/log"
)

// Auth authenticates the single administrator account configured through
// the environment. There is no user table; the admin is the only principal.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, ot otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       ot,
		jwtService: jwtService,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".Login")
	defer scope.End()

	if req.Username != s.cfg.Admin.Username || s.verifyPassword(req.Password) != nil {
		log.Warn().Str("username", req.Username).Msg("failed admin login attempt")

		return res, failure.InvalidCredentials // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(req.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".RefreshToken")
	defer scope.End()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// verifyPassword prefers the bcrypt hash when one is configured and falls
// back to a constant-time compare against the plaintext env value, which is
// how small single-admin deployments configure this.
func (s *serviceImpl) verifyPassword(candidate string) error {
	if s.cfg.Admin.PasswordHash != "" {
		return password.Verify(candidate, s.cfg.Admin.PasswordHash)
	}

	return password.VerifyPlain(candidate, s.cfg.Admin.Password)
}
