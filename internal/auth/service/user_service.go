package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/storelane/auth-service/internal/auth/domain UserRepository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/auth-service/internal/auth/domain"
	"github.com/storelane/auth-service/internal/auth/dto"
	"github.com/storelane/auth-service/internal/auth/lockout"
	"github.com/storelane/auth-service/internal/auth/password"
	autherror "github.com/storelane/auth-service/internal/errors"
	"github.com/storelane/auth-service/internal/metrics"
	"github.com/storelane/auth-service/pkg/constant"
)

// dummyHash is a valid bcrypt hash compared against when no account matches
// the email, so both login failure paths pay a comparable hashing cost.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	tracker      *lockout.Tracker
	policy       *password.Policy
	bcryptCost   int
	validate     *validator.Validate
	log          zerolog.Logger
}

func NewUserService(
	repo domain.UserRepository,
	tokenService TokenGenerator,
	tracker *lockout.Tracker,
	policy *password.Policy,
	bcryptCost int,
	log zerolog.Logger,
) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		tracker:      tracker,
		policy:       policy,
		bcryptCost:   bcryptCost,
		validate:     validator.New(),
		log:          log,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" {
		return failure(constant.MsgFieldsRequired), autherror.ErrValidation
	}

	email := domain.NormalizeEmail(input.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return failure(constant.MsgInvalidEmail), autherror.ErrValidation
	}

	if ok, reason := s.policy.Validate(input.Password); !ok {
		return failure(reason), autherror.ErrWeakPassword
	}

	// Advisory pre-check. The users.email unique index is the authoritative
	// guard against a concurrent duplicate registration; Insert below maps
	// that violation to the same conflict.
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Error().Err(err).Msg("register: existence check failed")
		return nil, err
	}
	if exists {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return failure(constant.MsgEmailAlreadyInUse), autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		s.log.Error().Err(err).Msg("register: password hashing failed")
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		Role:         constant.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return failure(constant.MsgEmailAlreadyInUse), autherror.ErrEmailAlreadyInUse
		}
		s.log.Error().Err(err).Msg("register: insert failed")
		return nil, err
	}

	token, expiresAt, err := s.tokenService.Generate(user)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("register: token signing failed")
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return &dto.AuthResult{
		Success:   true,
		Token:     token,
		User:      dto.NewUserOutput(user),
		ExpiresAt: &expiresAt,
		Message:   constant.MsgRegistered,
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return failure(constant.MsgFieldsRequired), autherror.ErrValidation
	}

	email := domain.NormalizeEmail(input.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return failure(constant.MsgInvalidEmail), autherror.ErrValidation
	}

	if locked, remaining := s.tracker.IsLocked(email); locked {
		s.log.Warn().Str("email", email).Dur("remaining", remaining).Msg("login: account locked")
		metrics.LoginsTotal.WithLabelValues("locked").Inc()
		minutes := int(remaining.Minutes()) + 1
		return failure(fmt.Sprintf("too many failed attempts, try again in %d minute(s)", minutes)),
			autherror.ErrAccountLocked
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Includes context cancellation: abort without touching the
		// tracker, a cancelled call is not a failed login.
		s.log.Error().Err(err).Msg("login: lookup failed")
		return nil, err
	}

	if user == nil {
		// Equalize timing with the password-mismatch path.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(input.Password))
		return s.failedAttempt(email, "unknown email"), autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return s.failedAttempt(email, "password mismatch"), autherror.ErrInvalidCredentials
	}

	s.tracker.Clear(email)

	token, expiresAt, err := s.tokenService.Generate(user)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("login: token signing failed")
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &dto.AuthResult{
		Success:   true,
		Token:     token,
		User:      dto.NewUserOutput(user),
		ExpiresAt: &expiresAt,
		Message:   constant.MsgLoggedIn,
	}, nil
}

// failedAttempt records the failure and builds the generic rejection. The
// real cause is logged for operators only; the caller-visible message is
// identical whether the account is missing or the password is wrong.
func (s *UserService) failedAttempt(email, cause string) *dto.AuthResult {
	s.tracker.RecordFailure(email)
	s.log.Warn().Str("email", email).Str("cause", cause).Msg("login: failed attempt")
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	return failure(constant.MsgInvalidCredentials)
}

func failure(msg string) *dto.AuthResult {
	return &dto.AuthResult{Success: false, Message: msg}
}
