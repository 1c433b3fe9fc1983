// FILE: internal/service/user_service.go
package service

import (
	"context"
	"time"

	"cornell-notepad-be/internal/apperror"
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/pkg/logger"
	"cornell-notepad-be/internal/pkg/password"
	"cornell-notepad-be/internal/repository/specification"
	"cornell-notepad-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFound("User not found")
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Version:   user.Version,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFound("User not found")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Version++
	user.UpdatedAt = time.Now()

	return repo.Update(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFound("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.NewUnauthenticated("Invalid password")
	}

	if violations := password.Validate(req.NewPassword); len(violations) > 0 {
		return invalidPasswordError(violations)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}

	return repo.UpdatePassword(ctx, userId, string(hash))
}

// DeleteAccount removes the user and every note they own in one
// transaction. Orphaned notes must never survive their owner.
func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info("user", "account deleted", map[string]interface{}{"user_id": userId})
	return nil
}
