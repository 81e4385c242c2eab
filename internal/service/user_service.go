package service

import (
	"context"
	"errors"
	"movie_watchlist/internal/repository"
	"movie_watchlist/model"
	"strings"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, email string, password string) (*model.User, error)
	Login(ctx context.Context, email string, password string) (*model.User, error)
	GetProfile(ctx context.Context, userId string) (*model.User, error)
	UpdateProfile(ctx context.Context, userId string, update model.ProfileUpdate) (*model.User, error)
}

type UserService struct {
	userRepo repository.IUserRepository
	hashCost int
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		hashCost: bcrypt.DefaultCost,
	}
}

//------------------------------------------
//------------------------------------------

// Register creates the account but does not log it in.
func (m *UserService) Register(ctx context.Context, email string, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, model.ErrInvalidEmail
	}

	_, err := m.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.hashCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Id:       newId(),
		Email:    email,
		Password: string(hash),
		Movies:   []string{},
	}
	// the unique index still catches a concurrent registration
	if err = m.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (m *UserService) Login(ctx context.Context, email string, password string) (*model.User, error) {
	user, err := m.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	return user, nil
}

func (m *UserService) GetProfile(ctx context.Context, userId string) (*model.User, error) {
	return m.userRepo.GetUserById(ctx, userId)
}

func (m *UserService) UpdateProfile(ctx context.Context, userId string, update model.ProfileUpdate) (*model.User, error) {
	update.Name = strings.TrimSpace(update.Name)
	update.Bio = strings.TrimSpace(update.Bio)
	update.AvatarUrl = strings.TrimSpace(update.AvatarUrl)

	if err := m.userRepo.UpdateProfile(ctx, userId, update); err != nil {
		return nil, err
	}
	return m.userRepo.GetUserById(ctx, userId)
}

//------------------------------------------
//------------------------------------------

// normalizeEmail always returns fresh memory, request bodies are reused by the server.
func normalizeEmail(email string) string {
	return strings.Clone(strings.ToLower(strings.TrimSpace(email)))
}
