package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

// Tokens are valid for 7 days from issuance; there is no refresh path, a
// client re-logs-in after expiry.
const tokenTTL = 7 * 24 * time.Hour

// JWTTokenService signs and verifies HS256 tokens with the process-wide
// secret from configuration.
type JWTTokenService struct {
	secret []byte
	now    func() time.Time
}

var _ ports.TokenService = (*JWTTokenService)(nil)

func NewJWTTokenService(secret []byte) *JWTTokenService {
	return &JWTTokenService{
		secret: secret,
		now:    time.Now,
	}
}

func (s *JWTTokenService) Issue(identity domain.Identity) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":        identity.SubjectID,
		"email":      identity.Email,
		"first_name": identity.FirstName,
		"last_name":  identity.LastName,
		"role":       string(identity.Role),
		"iat":        now.Unix(),
		"exp":        now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(tokenString string) (domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: missing role", domain.ErrInvalidToken)
	}
	role := domain.Role(roleClaim)
	if !role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidToken, roleClaim)
	}

	// Display attributes are optional; a missing name claim is not a
	// verification failure.
	email, _ := claims["email"].(string)
	firstName, _ := claims["first_name"].(string)
	lastName, _ := claims["last_name"].(string)

	return domain.Identity{
		SubjectID: subject,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}, nil
}
