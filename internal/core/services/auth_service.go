package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawfectstay/booking-service/internal/config"
	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

const (
	maxLoginAttempts   = 10
	loginAttemptWindow = 15 * time.Minute
)

// AuthService handles user login and the fixed-pair administrator login.
// Failed attempts per email are throttled through Redis; Redis being down
// degrades to no throttling rather than blocking logins.
type AuthService struct {
	userRepo          ports.UserRepository
	tokens            ports.TokenService
	adminUsername     string
	adminPasswordHash []byte
	redisClient       *redis.Client
	redisCB           *gobreaker.CircuitBreaker
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	userRepo ports.UserRepository,
	tokens ports.TokenService,
	adminUsername string,
	adminPasswordHash []byte,
	redisClient *redis.Client,
) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		tokens:            tokens,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		redisClient:       redisClient,
		redisCB:           config.NewCircuitBreaker("Redis-Throttle"),
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrValidation
	}

	if err := s.checkThrottle(ctx, email); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.recordFailure(ctx, email)
		// Unknown email and wrong password produce the same response.
		return "", domain.ErrAuthentication
	}

	if err := VerifyPassword(password, user.PasswordHash); err != nil {
		s.recordFailure(ctx, email)
		return "", err
	}

	s.clearFailures(ctx, email)

	return s.tokens.Issue(domain.Identity{
		SubjectID: user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      domain.RoleUser,
	})
}

// AdminLogin checks the configured credential pair. The administrator is
// not a User row; the token carries the username as subject.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrValidation
	}

	nameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password))
	if !nameMatch || passErr != nil {
		return "", domain.ErrAuthentication
	}

	return s.tokens.Issue(domain.Identity{
		SubjectID: s.adminUsername,
		Role:      domain.RoleAdmin,
	})
}

func (s *AuthService) checkThrottle(ctx context.Context, email string) error {
	if s.redisClient == nil {
		return nil
	}

	attempts, err := s.redisCB.Execute(func() (interface{}, error) {
		return s.redisClient.Get(ctx, throttleKey(email)).Int()
	})
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		log.Printf("auth: throttle check unavailable: %v", err)
		return nil
	}

	if attempts.(int) >= maxLoginAttempts {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.redisClient == nil {
		return
	}

	_, err := s.redisCB.Execute(func() (interface{}, error) {
		key := throttleKey(email)
		count, err := s.redisClient.Incr(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if count == 1 {
			return nil, s.redisClient.Expire(ctx, key, loginAttemptWindow).Err()
		}
		return nil, nil
	})
	if err != nil {
		log.Printf("auth: failed to record login attempt: %v", err)
	}
}

func (s *AuthService) clearFailures(ctx context.Context, email string) {
	if s.redisClient == nil {
		return
	}

	_, err := s.redisCB.Execute(func() (interface{}, error) {
		return nil, s.redisClient.Del(ctx, throttleKey(email)).Err()
	})
	if err != nil {
		log.Printf("auth: failed to clear login attempts: %v", err)
	}
}

func throttleKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
