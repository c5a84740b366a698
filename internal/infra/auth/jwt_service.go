package auth

import (
	"time"

	"registrar/config"
	"registrar/internal/domain/service"
	"registrar/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenSigner interface using HS256 JWTs.
type jwtService struct {
	secret    []byte        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	issuer    string
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenSigner, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := config.DefaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
		issuer:    cfg.Env.ServiceName,
		now:       time.Now,
	}, nil
}

// Sign creates an access token for the given account.
func (s *jwtService) Sign(subject uuid.UUID, email string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Email: email,
		Type:  accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// Validate checks the signature, expiry and type of an access token.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	return claims, nil
}
