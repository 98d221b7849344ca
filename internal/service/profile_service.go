package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/repository"
)

type ProfileService interface {
	List(ctx context.Context, userID int64) ([]*models.Profile, error)
}

type profileService struct {
	pr repository.ProfileRepository
	sa repository.SocialAccountRepository
}

func NewProfileService(pr repository.ProfileRepository, sa repository.SocialAccountRepository) ProfileService {
	return &profileService{
		pr: pr,
		sa: sa,
	}
}

// List returns the user's profiles, each carrying its accounts.
func (s *profileService) List(ctx context.Context, userID int64) ([]*models.Profile, error) {
	if userID == 0 {
		err := errors.New("UserID is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		profiles    []*models.Profile
		accounts    []*models.SocialAccount
		profilesErr error
		accountsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profiles, profilesErr = s.pr.ListByUserID(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		accounts, accountsErr = s.sa.ListByUserID(ctx, userID)
	}()
	wg.Wait()

	if err := errors.Join(profilesErr, accountsErr); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("Error getting profiles")
	}

	byProfile := make(map[int64][]*models.SocialAccount, len(profiles))
	for _, acc := range accounts {
		byProfile[acc.ProfileID] = append(byProfile[acc.ProfileID], acc)
	}

	out := make([]*models.Profile, 0, len(profiles))
	for _, p := range profiles {
		p.Accounts = byProfile[p.ID]
		if p.Accounts == nil {
			p.Accounts = []*models.SocialAccount{}
		}
		out = append(out, p)
	}

	return out, nil
}
