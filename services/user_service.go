package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/models"
	"stayease-backend/repositories"
	"stayease-backend/utils"
)

type UserService struct {
	users repositories.UserRepository
	log   *logrus.Logger
}

func NewUserService(store *repositories.Store, log *logrus.Logger) *UserService {
	return &UserService{users: store.Users, log: log}
}

// Register creates an account; username and email must both be free.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, invalidField("username", "unique", "username is already taken")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, invalidField("email", "unique", "email is already registered")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  username,
		Password:  hash,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, invalidField("username", "unique", "username or email is already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return user, nil
}

// Authenticate checks a password against the account named by username or email.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)

	var (
		user *models.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = s.users.GetByEmail(ctx, normalizeEmail(login))
		if errors.Is(err, ErrNotFound) {
			user, err = s.users.GetByUsername(ctx, login)
		}
	} else {
		user, err = s.users.GetByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !utils.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			if other, err := s.users.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
				return nil, invalidField("email", "unique", "email is already registered")
			} else if err != nil && !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("lookup email: %w", err)
			}
			user.Email = email
		}
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, invalidField("email", "unique", "email is already registered")
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// Delete soft-deletes the account; listings it hosts are kept.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrUnauthorized
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.log.WithField("user_id", id).Info("user deleted")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// sessionUser loads the caller; a deleted account counts as no session.
func sessionUser(ctx context.Context, users repositories.UserRepository, id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrUnauthorized
	}
	user, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}
