package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/vinay461as/recipi-api/internal/config"
	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, profile updates
// and the JWT token lifecycle, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is trimmed and checked for a plausible address shape, the
// password must satisfy the minimum length, and the optional name is trimmed.
// The password is stored only as a bcrypt hash.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *ValidationError when the payload violates the account schema;
//   - a wrapped store.ErrEmailAlreadyExists when the email is taken;
//   - a wrapped storage error on other repository failures.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(request.Email)
	name := strings.TrimSpace(request.Name)

	fields := map[string]any{}
	if email != "" {
		fields[validators.FieldEmail] = email
	}
	if request.Password != "" {
		fields[validators.FieldPassword] = request.Password
	}
	if name != "" {
		fields[validators.FieldName] = name
	}

	if errs := validators.UserSchema.Validate(fields); errs != nil {
		log.Error().Str("email", email).Msg("registration payload rejected")
		return models.User{}, &ValidationError{Fields: errs}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		log.Error().Str("email", email).Msg("malformed email address")
		return models.User{}, newFieldError(validators.FieldEmail, "enter a valid email address")
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Every authentication failure — unknown email, wrong password, deactivated
// account — is collapsed into ErrInvalidCredentials so the response does not
// leak which part was wrong.
//
// Returns the authenticated user record or:
//   - a *ValidationError when email or password is missing;
//   - ErrInvalidCredentials when the credentials do not match an active account;
//   - a wrapped storage error on other repository failures.
func (a *authService) Login(ctx context.Context, request models.TokenRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(request.Email)

	fields := map[string]any{}
	if email != "" {
		fields[validators.FieldEmail] = email
	}
	if request.Password != "" {
		fields[validators.FieldPassword] = request.Password
	}

	if errs := validators.CredentialsSchema.Validate(fields); errs != nil {
		log.Error().Str("email", email).Msg("token payload rejected")
		return models.User{}, &ValidationError{Fields: errs}
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", email).Msg("unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, request.Password) {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if !foundUser.IsActive {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("account is deactivated")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration. A fresh
// token is issued on every call; earlier tokens stay valid until they expire.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser resolves a user ID (typically taken from a bearer token) to the
// stored account record.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial update to the caller's own account.
// Nil fields keep their stored values; a provided password is re-validated
// against the account schema and stored as a fresh bcrypt hash.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Password != nil {
		fields := map[string]any{validators.FieldPassword: *update.Password}
		if errs := validators.UserSchema.Partial().Validate(fields); errs != nil {
			log.Error().Int64("id", userID).Msg("profile update rejected")
			return models.User{}, &ValidationError{Fields: errs}
		}

		passwordHash, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}
