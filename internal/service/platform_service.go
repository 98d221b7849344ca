package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/repository"
)

var ErrAccountNotFound = errors.New("Social account doesn't exist")

type PlatformService interface {
	List(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	Delete(ctx context.Context, userID, accountID int64) error
}

type platformService struct {
	sa repository.SocialAccountRepository
}

func NewPlatformService(sa repository.SocialAccountRepository) PlatformService {
	return &platformService{
		sa: sa,
	}
}

func (s *platformService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	var err error

	if userID == 0 {
		err = errors.New("UserID is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	accounts, err := s.sa.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Error getting social accounts")
	}
	if accounts == nil {
		accounts = []*models.SocialAccount{}
	}

	return accounts, nil
}

// Delete disconnects an account. Posts already stored keep their selected account rows.
func (s *platformService) Delete(ctx context.Context, userID, accountID int64) error {
	var err error

	if userID == 0 {
		err = errors.New("UserID is not valid")
		slog.Info(err.Error())
		return err
	}

	if accountID == 0 {
		err = errors.New("AccountID is not valid")
		slog.Info(err.Error())
		return err
	}

	isValid, err := s.sa.CheckByUserID(ctx, accountID, userID)
	if err != nil {
		return err
	}

	if !isValid {
		slog.Info(ErrAccountNotFound.Error(), "account_id", accountID)
		return ErrAccountNotFound
	}

	if err = s.sa.Remove(ctx, accountID); err != nil {
		return fmt.Errorf("Unable to remove social account")
	}

	return nil
}
