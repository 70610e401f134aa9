package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/config"
)

// MemberHeader carries the member id when auth is disabled (local development).
const MemberHeader = "X-Member-Id"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSubject = errors.New("token has no subject")
)

// Validator verifies bearer tokens from the member provider, either with a JWKS
// endpoint (RS*) or a shared HMAC secret (HS256).
type Validator struct {
	cfg    config.AuthConfig
	logger *logrus.Logger
	jwks   *keyfunc.JWKS
}

func NewValidator(ctx context.Context, cfg config.AuthConfig, logger *logrus.Logger) (*Validator, error) {
	v := &Validator{cfg: cfg, logger: logger}
	if !cfg.Enabled {
		logger.Warn("Auth disabled: member id is taken from the " + MemberHeader + " header")
		return v, nil
	}

	if cfg.JWKSURL != "" {
		jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			Ctx:               ctx,
			RefreshInterval:   time.Hour,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				logger.WithError(err).Error("JWKS refresh error")
			},
		})
		if err != nil {
			return nil, fmt.Errorf("fetch jwks: %w", err)
		}
		v.jwks = jwks
		return v, nil
	}

	if cfg.HMACSecret == "" {
		return nil, errors.New("auth enabled but neither auth.jwks_url nor auth.hmac_secret is set")
	}
	return v, nil
}

func (v *Validator) Enabled() bool {
	return v != nil && v.cfg.Enabled
}

// Resolve builds the session for one request. Missing credentials give an anonymous
// session; present but invalid credentials are an error.
func (v *Validator) Resolve(ctx context.Context, authorization, memberHeader string) (*Session, error) {
	if !v.Enabled() {
		memberID := strings.TrimSpace(memberHeader)
		if memberID == "" {
			return Anonymous(), nil
		}
		return &Session{MemberID: memberID, Method: MethodHeader}, nil
	}

	token := bearerToken(authorization)
	if token == "" {
		return Anonymous(), nil
	}
	return v.Authenticate(ctx, token)
}

func (v *Validator) Authenticate(ctx context.Context, raw string) (*Session, error) {
	opts := []jwt.ParserOption{}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	var keyFunc jwt.Keyfunc
	if v.jwks != nil {
		keyFunc = v.jwks.Keyfunc
		opts = append(opts, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	} else {
		secret := []byte(v.cfg.HMACSecret)
		keyFunc = func(*jwt.Token) (interface{}, error) { return secret, nil }
		opts = append(opts, jwt.WithValidMethods([]string{"HS256"}))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, keyFunc, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrMissingSubject
	}

	return &Session{
		MemberID: subject,
		Name:     firstClaim(claims, "name", "preferred_username"),
		Email:    firstClaim(claims, "email"),
		Method:   MethodJWT,
	}, nil
}

func (v *Validator) Close() {
	if v != nil && v.jwks != nil {
		v.jwks.EndBackground()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func firstClaim(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if s, ok := claims[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
