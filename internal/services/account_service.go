package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, username, password string) (*db_models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, location db_models.GeoPoint) error
}

type AccountService struct {
	userRepo repositories.UserRepository
	logger   *zap.SugaredLogger
}

func NewAccountService(userRepo repositories.UserRepository, logger *zap.SugaredLogger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (a *AccountService) SignUp(ctx context.Context, username, password string) (*db_models.User, error) {
	existing, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		a.logger.Errorw("creating user failed", "username", username, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (a *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) GetUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// UpdateLocation stores the latest resolved position on the user record.
func (a *AccountService) UpdateLocation(ctx context.Context, userID uuid.UUID, location db_models.GeoPoint) error {
	if err := a.userRepo.UpdateLocation(ctx, userID, &location); err != nil {
		a.logger.Errorw("updating user location failed", "user_id", userID, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}
