package auth

import (
	"time"

	"kasa/config"
	"kasa/internal/domain/entity"
	"kasa/internal/domain/service"
	"kasa/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType       = "access"
	sessionTokenType      = "session"
	confirmationTokenType = "confirm"

	confirmationTTL = 48 * time.Hour
)

// sessionClaims carry a visitor session between requests.
type sessionClaims struct {
	Type        string           `json:"typ"`
	Page        entity.Page      `json:"page"`
	Identity    *sessionIdentity `json:"idn,omitempty"`
	AccessToken string           `json:"atk,omitempty"`
	jwt.RegisteredClaims
}

type sessionIdentity struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	GivenName  string    `json:"given"`
	FamilyName string    `json:"family"`
}

type accessClaims struct {
	Type string `json:"typ"`
	service.AccessClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	sessionSecret []byte
	ttl           time.Duration
	now           func() time.Time
}

// NewJWTService builds the token service from the configured secrets.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.SessionTTL
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		sessionSecret: []byte(cfg.SecretKey.Session),
		ttl:           ttl,
		now:           time.Now,
	}, nil
}

// GenerateAccessToken signs a provider session token with a unique id, so it can be revoked.
func (s *jwtService) GenerateAccessToken(identityID uuid.UUID, email string) (string, error) {
	return s.signIdentity(accessTokenType, identityID, email, s.ttl)
}

func (s *jwtService) ValidateAccessToken(token string) (*service.AccessClaims, error) {
	return s.parseIdentity(accessTokenType, token)
}

func (s *jwtService) GenerateConfirmationToken(identityID uuid.UUID, email string) (string, error) {
	return s.signIdentity(confirmationTokenType, identityID, email, confirmationTTL)
}

func (s *jwtService) ValidateConfirmationToken(token string) (*service.AccessClaims, error) {
	return s.parseIdentity(confirmationTokenType, token)
}

// signIdentity signs identity claims of the given type with the access secret.
func (s *jwtService) signIdentity(tokenType string, identityID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := accessClaims{
		Type: tokenType,
		AccessClaims: service.AccessClaims{
			IdentityID: identityID,
			Email:      email,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Subject:   identityID.String(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrapf(err, "sign %s token", tokenType)
	}

	return token, nil
}

func (s *jwtService) parseIdentity(tokenType, token string) (*service.AccessClaims, error) {
	claims := &accessClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return &claims.AccessClaims, nil
}

func (s *jwtService) EncodeSession(session entity.Session) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Type:        sessionTokenType,
		Page:        session.Page,
		AccessToken: session.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if session.Identity != nil {
		claims.Identity = &sessionIdentity{
			ID:         session.Identity.ID,
			Email:      session.Identity.Email,
			GivenName:  session.Identity.GivenName,
			FamilyName: session.Identity.FamilyName,
		}
		claims.Subject = session.Identity.ID.String()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return token, nil
}

func (s *jwtService) DecodeSession(token string) (entity.Session, error) {
	claims := &sessionClaims{}
	if err := s.parse(token, claims, s.sessionSecret); err != nil {
		return entity.Session{}, err
	}
	if claims.Type != sessionTokenType {
		return entity.Session{}, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if !claims.Page.Valid() {
		return entity.Session{}, errors.Errorf("unknown page %q", claims.Page)
	}

	session := entity.Session{
		Page:        claims.Page,
		AccessToken: claims.AccessToken,
	}
	if claims.Identity != nil {
		session.Identity = &entity.Identity{
			ID:         claims.Identity.ID,
			Email:      claims.Identity.Email,
			GivenName:  claims.Identity.GivenName,
			FamilyName: claims.Identity.FamilyName,
		}
	}

	return session, nil
}

func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *jwtService) parse(token string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return errors.Wrap(err, "parse token")
	}

	return nil
}
