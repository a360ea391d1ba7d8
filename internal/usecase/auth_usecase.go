package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrUserDisabled       = errors.New("user disabled")
)

// IAuthUseCase exposes login and user management.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	Register(ctx context.Context, u entities.User, password string) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

type AuthUseCase struct {
	repo      interfaces.IUserRepository
	jwtSecret string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{repo: repo, jwtSecret: jwtSecret}
}

// Login verifies credentials and issues a bearer token carrying the
// user id and role.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" || !auth.CheckPassword(password, user.PasswordHash) {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if !user.Active {
		return "", entities.User{}, ErrUserDisabled
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role), u.jwtSecret)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

// Register creates a CRM operator account. Admin-gated at the route layer.
func (u *AuthUseCase) Register(ctx context.Context, user entities.User, password string) (entities.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Name == "" || user.Email == "" || len(password) < 8 {
		return entities.User{}, ErrInvalidUserInput
	}
	if !entities.ValidRole(user.Role) {
		return entities.User{}, ErrInvalidUserInput
	}

	existing, err := u.repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return entities.User{}, err
	}

	user.ID = uuid.NewString()
	user.PasswordHash = hash
	user.Active = true
	user.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, user)
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}
