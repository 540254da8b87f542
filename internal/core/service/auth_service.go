package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/auth"
	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	patients ports.PatientRepository
	issuer   *auth.TokenIssuer
	throttle ports.LoginThrottle // nil disables throttling
	logger   zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	patients ports.PatientRepository,
	issuer *auth.TokenIssuer,
	throttle ports.LoginThrottle,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		patients: patients,
		issuer:   issuer,
		throttle: throttle,
		logger:   logger,
	}
}

// Register creates an account. A patient account also gets an empty patient
// profile so the ownership relation exists from the start.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Role == "" {
		input.Role = domain.RolePatient
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hash,
		Role:           input.Role,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if created.Role == domain.RolePatient {
		if _, err := s.patients.Create(ctx, &domain.Patient{
			UserID:    created.ID,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Uint("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints an access token. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// Redis trouble must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			return "", nil, domain.ErrLoginThrottled
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(password, user.HashedPassword)
	if err != nil {
		// Corrupted stored digest: unexpected, surfaced as a server error.
		s.logger.Error().Err(err).Uint("user_id", user.ID).Msg("stored password digest unreadable")
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// CurrentUser returns the account behind an authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
