package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/config"
)

const tokenType = "bearer"

var (
	ErrEmailTaken         = apperr.Conflict("Email already registered")
	ErrInvalidCredentials = apperr.Unauthorized("Incorrect email or password")
	ErrInvalidToken       = apperr.Unauthorized("Could not validate credentials")
	ErrUserNotFound       = apperr.NotFound("User not found")
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Resolve(ctx context.Context, token string) (*User, error)
	ResolvePrincipal(ctx context.Context, token string) (*auth.Principal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) (*User, error)
}

type userService struct {
	repo     UserRepository
	denylist auth.Denylist
	tokenTTL time.Duration
}

func NewService(repo UserRepository, denylist auth.Denylist, tokenTTL time.Duration) UserService {
	return &userService{
		repo:     repo,
		denylist: denylist,
		tokenTTL: tokenTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, email, password string) (*User, error) {
	log := config.WithContext(ctx)
	email = normalizeEmail(email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if existing != nil {
		log.WithField("email", email).Warn("Registration with an email already in use")
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := &User{
		Email:          email,
		HashedPassword: string(hashed),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return u, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		log.WithField("user_id", u.ID).Warn("Password mismatch on login")
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Email, u.IsAdmin, s.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign access token")
		return nil, err
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   tokenType,
		IsAdmin:     u.IsAdmin,
	}, nil
}

// Resolve re-reads the user so that admin changes apply to tokens
// issued before them.
func (s *userService) Resolve(ctx context.Context, token string) (*User, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(token)
	if err != nil {
		log.WithError(err).Debug("Rejected access token")
		return nil, ErrInvalidToken
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check token denylist")
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load token owner")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

func (s *userService) ResolvePrincipal(ctx context.Context, token string) (*auth.Principal, error) {
	u, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return &auth.Principal{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) SetAdmin(ctx context.Context, email string, isAdmin bool) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if err := s.repo.UpdateAdmin(ctx, u.ID, isAdmin); err != nil {
		log.WithError(err).Error("Failed to update admin flag")
		return nil, err
	}
	u.IsAdmin = isAdmin

	log.WithField("user_id", u.ID).WithField("is_admin", isAdmin).Info("Admin flag updated")
	return u, nil
}
