package composer

import (
	"github.com/maheshrc27/postflow-composer/internal/models"
)

// Resolver narrows the user's accounts down to the ones owned by the active profile.
type Resolver struct {
	profiles      []*models.Profile
	accounts      []*models.SocialAccount
	activeProfile int64
	visible       []*models.SocialAccount
}

func NewResolver(profiles []*models.Profile, accounts []*models.SocialAccount) *Resolver {
	return &Resolver{
		profiles: profiles,
		accounts: accounts,
	}
}

// Select makes profileID active and returns the ids of every account it owns,
// in fetch order. An unknown or empty profile yields no accounts.
func (r *Resolver) Select(profileID int64) []int64 {
	r.activeProfile = profileID
	r.visible = make([]*models.SocialAccount, 0)

	ids := make([]int64, 0)
	for _, acc := range r.accounts {
		if acc.ProfileID == profileID {
			r.visible = append(r.visible, acc)
			ids = append(ids, acc.ID)
		}
	}
	return ids
}

func (r *Resolver) ActiveProfile() int64 {
	return r.activeProfile
}

func (r *Resolver) Profiles() []*models.Profile {
	return r.profiles
}

// Visible returns the accounts of the active profile.
func (r *Resolver) Visible() []*models.SocialAccount {
	return r.visible
}

// Lookup finds id among the visible accounts.
func (r *Resolver) Lookup(id int64) (*models.SocialAccount, bool) {
	for _, acc := range r.visible {
		if acc.ID == id {
			return acc, true
		}
	}
	return nil, false
}
