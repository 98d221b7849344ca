package models

import (
	"time"
)

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYoutube   Platform = "youtube"
	PlatformTiktok    Platform = "tiktok"
	PlatformThreads   Platform = "threads"
	PlatformPinterest Platform = "pinterest"
	PlatformBluesky   Platform = "bluesky"
)

// characterLimits are display-only; nothing rejects content that exceeds them.
var characterLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformBluesky:   300,
	PlatformThreads:   500,
	PlatformPinterest: 500,
	PlatformInstagram: 2200,
	PlatformTiktok:    2200,
	PlatformLinkedIn:  3000,
	PlatformYoutube:   5000,
	PlatformFacebook:  63206,
}

func (p Platform) IsValid() bool {
	_, ok := characterLimits[p]
	return ok
}

// CharacterLimit returns the post length limit of the platform, or 0 when unknown.
func (p Platform) CharacterLimit() int {
	return characterLimits[p]
}

type SocialAccount struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	ProfileID       int64     `db:"profile_id" json:"profile_id"`
	Platform        Platform  `db:"platform" json:"platform"`
	AccountID       string    `db:"account_id" json:"account_id"`
	AccountName     string    `db:"account_name" json:"account_name"`
	AccountUsername string    `db:"account_username" json:"account_username"`
	ProfilePicture  string    `db:"profile_picture_url" json:"profile_picture"`
	AccountStatus   string    `db:"account_status" json:"account_status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type SelectedAccount struct {
	PostID    int64     `db:"post_id" json:"post_id"`
	AccountID int64     `db:"account_id" json:"account_id"`
	Platform  Platform  `db:"platform" json:"platform"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Profile groups the social accounts a user publishes to together.
type Profile struct {
	ID        int64            `db:"id" json:"id"`
	UserID    int64            `db:"user_id" json:"user_id"`
	Name      string           `db:"name" json:"name"`
	Accounts  []*SocialAccount `db:"-" json:"accounts"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}
