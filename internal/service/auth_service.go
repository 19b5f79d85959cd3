package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dealerreview/internal/auth"
	apperrors "dealerreview/internal/errors"
	"dealerreview/internal/logger"
	"dealerreview/internal/model"
	"dealerreview/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// AuthResult is a freshly started session and the token that proves it.
type AuthResult struct {
	User      *model.User
	Session   *auth.Session
	Token     string
	ExpiresAt time.Time
}

// AuthService handles session lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, sessionID string) (*auth.Session, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.SessionTokenService
	sessions auth.SessionStoreInterface
	log      logger.ILogger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.SessionTokenService, sessions auth.SessionStoreInterface, log logger.ILogger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		sessions: sessions,
		log:      log,
	}
}

// Register creates a user with a hashed password and logs them in.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, apperrors.ErrCredentialsRequired
	}

	existing, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", logger.String("username", user.Username))
	return s.startSession(ctx, user)
}

// Login verifies credentials and starts a session.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.startSession(ctx, user)
}

// Logout ends a session. An empty id means there was nothing to end.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ResolveSession returns the live session for id, or auth.ErrSessionNotFound.
func (s *authService) ResolveSession(ctx context.Context, sessionID string) (*auth.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return session, nil
}

func (s *authService) startSession(ctx context.Context, user *model.User) (*AuthResult, error) {
	session, err := s.sessions.Create(ctx, user.ID, user.Username, s.tokens.TTL())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(session)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &AuthResult{
		User:      user,
		Session:   session,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
