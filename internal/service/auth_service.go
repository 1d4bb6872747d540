package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"brainvault/internal/auth"
	"brainvault/internal/errors"
	"brainvault/internal/model"
	"brainvault/internal/repository"
)

const (
	bcryptCost = 10
	// bcrypt rejects longer input. The request validator counts characters,
	// so multibyte passwords are checked here in bytes.
	maxPasswordBytes = 72
)

// AuthService handles authentication operations.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	// Signin returns an access token, plus a refresh token when a token store
	// is available.
	Signin(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	// Signout revokes the presented access token and, if given, the refresh token.
	Signout(ctx context.Context, claims *auth.Claims, refreshToken string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, logger *zap.Logger) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// Signup creates a user with a hashed password.
func (s *authService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	if len(password) > maxPasswordBytes {
		return nil, errors.NewValidationError(errors.ErrPasswordTooLong,
			fmt.Sprintf("password exceeds %d bytes", maxPasswordBytes), "password")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}
	if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same name
		if repository.IsDuplicateKey(err) {
			return nil, errors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Signin verifies credentials and issues tokens.
func (s *authService) Signin(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", "", errors.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", errors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	if !s.tokenStore.Enabled() {
		return accessToken, "", nil
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Username, s.jwtService.RefreshTTL()); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Refresh exchanges a stored refresh token for a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidToken
	}

	storedUserID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", errors.ErrInvalidToken
	}

	userID, err := claims.UserUUID()
	if err != nil || storedUserID != userID || storedUsername != claims.Username {
		return "", errors.ErrInvalidToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(userID, claims.Username)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Signout blacklists the access token until it expires and deletes the
// refresh token. A refresh token belonging to another user is rejected.
func (s *authService) Signout(ctx context.Context, claims *auth.Claims, refreshToken string) error {
	if refreshToken != "" {
		refreshClaims, err := s.jwtService.ValidateRefreshToken(refreshToken)
		if err != nil || refreshClaims.UserID != claims.UserID {
			return errors.ErrInvalidToken
		}
		if err := s.tokenStore.DeleteRefreshToken(ctx, refreshClaims.ID); err != nil {
			return fmt.Errorf("delete refresh token: %w", err)
		}
	}

	if err := s.tokenStore.BlacklistAccessToken(ctx, claims.ID, claims.Remaining()); err != nil {
		return fmt.Errorf("blacklist access token: %w", err)
	}
	return nil
}
