// Package service implements the application's business logic.
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Izanmg/streamevents/internal/config"
	"github.com/Izanmg/streamevents/internal/middleware"
	"github.com/Izanmg/streamevents/internal/models"
	"github.com/Izanmg/streamevents/internal/observability"
	"github.com/Izanmg/streamevents/internal/repository"
	"github.com/Izanmg/streamevents/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	userRepo repository.UserRepository
	policy   validation.PasswordPolicy
	config   *config.Config
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// LoginInput carries the login form. Identifier may be a username or an
// email address.
type LoginInput struct {
	Identifier string
	Password   string
}

// NewAuthService returns an AuthService using the default password policy.
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		policy:   validation.DefaultPasswordPolicy(),
		config:   cfg,
	}
}

// WithPasswordPolicy swaps the password policy. Used for deployments with
// stricter rules and by tests.
func (s *AuthService) WithPasswordPolicy(policy validation.PasswordPolicy) *AuthService {
	s.policy = policy
	return s
}

// Register creates a new account. Emails are stored lowercase; the duplicate
// check here exists for a friendly error, the unique index is the authority.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	span, ctx := observability.NewSpan(ctx, "AuthService.Register")
	defer span.End()

	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, "", models.NewValidationError("Username, email, and password are required")
	}

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, "", err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePasswordConfirmation(in.Password, in.PasswordConfirm); err != nil {
		return nil, "", err
	}
	if err := validation.ValidatePasswordStrength(in.Password, s.policy); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewDuplicateEmailError()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Email:     email,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      models.RoleMember,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		span.SetError(err)
		return nil, "", err
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	observability.UserRegistrations.Inc()
	return user, token, nil
}

// ResolveLoginIdentifier maps the submitted identifier to a username. An
// identifier containing "@" is treated as an email and looked up; when the
// lookup hits, the account's username is substituted. On a miss the
// identifier passes through untouched so the login attempt fails the same
// way a wrong username does.
func (s *AuthService) ResolveLoginIdentifier(ctx context.Context, identifier string) (string, error) {
	if !strings.Contains(identifier, "@") {
		return identifier, nil
	}
	user, err := s.userRepo.GetByEmail(ctx, identifier)
	if err != nil {
		return "", err
	}
	if user == nil {
		return identifier, nil
	}
	return user.Username, nil
}

// Login authenticates the user and returns a signed token. All failure modes
// surface the same generic error so the response never reveals whether the
// account exists.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	username, err := s.ResolveLoginIdentifier(ctx, in.Identifier)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, "", models.NewUnauthorizedError("Invalid credentials")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); cmpErr != nil {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, "", models.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	return user, token, nil
}

// generateToken creates a JWT token for the given user ID and username
func (s *AuthService) generateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      middleware.TokenIssuer,
		"aud":      middleware.TokenAudience,
		"exp":      now.Add(time.Hour * 24 * 7).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
