// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"time"

	"cornell-notepad-be/internal/apperror"
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/pkg/logger"
	"cornell-notepad-be/internal/pkg/password"
	"cornell-notepad-be/internal/pkg/token"
	"cornell-notepad-be/internal/repository/specification"
	"cornell-notepad-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) error
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *token.Service
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *token.Service, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		log:        log,
	}
}

// invalidPasswordError bundles the full rule-violation list under the
// password field, so callers see every failed rule at once.
func invalidPasswordError(violations []password.Violation) error {
	return apperror.NewValidation("Invalid password", map[string]apperror.FieldViolation{
		"password": {
			Message: "Invalid password",
			Value:   violations,
		},
	})
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) error {
	if violations := password.Validate(req.Password); len(violations) > 0 {
		return invalidPasswordError(violations)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return err
	}

	s.log.Info("auth", "user signed up", map[string]interface{}{"user_id": user.Id})
	return nil
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	// Unknown user and wrong password answer identically: the response
	// must not reveal which half of the credential failed.
	if user == nil {
		return nil, apperror.NewUnauthenticated("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewUnauthenticated("invalid username or password")
	}

	accessToken, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.SignInResponse{AccessToken: accessToken}, nil
}
