package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
)

type UserService struct {
	store  models.UserRepo
	tokens *helpers.TokenManager
}

func NewUserService(store models.UserRepo, tokens *helpers.TokenManager) *UserService {
	return &UserService{
		store:  store,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password. The storage
// layer's uniqueness guarantee turns a racing duplicate into
// ErrDuplicateUsername.
func (us *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := models.Validate.Var(username, "required,min=1,max=64"); err != nil {
		return nil, models.ErrValidation
	}
	if password == "" {
		return nil, models.ErrValidation
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := us.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token.
// A missing user and a wrong password both map to ErrInvalidCredentials
// so the response never reveals which part was wrong.
func (us *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := us.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", models.ErrInvalidCredentials
	}
	return us.tokens.Issue(user)
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return us.store.GetUserByID(ctx, id)
}
