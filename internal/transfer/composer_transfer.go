package transfer

type SelectProfileRequest struct {
	ProfileID int64 `json:"profile_id" validate:"required,gt=0"`
}

type ToggleAccountRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
}

type ContentRequest struct {
	Content string `json:"content" validate:"max=65535"`
}

// ScheduleRequest carries the two schedule fields as typed by the user.
// Empty strings clear a field.
type ScheduleRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty"`
}

type MediaURLRequest struct {
	URL string `json:"url" validate:"required"`
}

type LibraryMediaRequest struct {
	AssetID int64 `json:"asset_id" validate:"required,gt=0"`
}
