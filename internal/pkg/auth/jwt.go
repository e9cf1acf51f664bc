package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"garmentflow/internal/entities"
	"garmentflow/internal/pkg/config"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims выдает внешний identity провайдер, subject - id пользователя.
type Claims struct {
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewVerifier(cfg *config.Auth) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

func (v *Verifier) Verify(tokenString string) (entities.Actor, error) {
	var claims Claims

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return entities.Actor{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}
	if claims.Subject == "" {
		return entities.Actor{}, fmt.Errorf("%w: subject is required", ErrInvalidToken)
	}

	role := entities.Role(claims.Role)
	if !role.IsValid() {
		return entities.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	status := entities.UserStatus(claims.Status)
	if status == "" {
		status = entities.DefaultUserStatus
	}

	return entities.Actor{
		ID:     claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   role,
		Status: status,
	}, nil
}

// Issue подписывает токен для actor. Используется в тестах и локальной отладке.
func (v *Verifier) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Email:  actor.Email,
		Name:   actor.Name,
		Role:   actor.Role.String(),
		Status: actor.Status.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
