package composer

import (
	"strings"
	"time"
)

// Schedule holds the calendar date ("2006-01-02") and time of day ("15:04")
// a post should go out at. Both or neither must be set.
type Schedule struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (s Schedule) IsZero() bool {
	return s.Date == "" && s.Time == ""
}

func (s Schedule) IsPartial() bool {
	return (s.Date == "") != (s.Time == "")
}

func (s Schedule) IsComplete() bool {
	return s.Date != "" && s.Time != ""
}

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

// Instant combines date and time into one absolute moment in loc.
func (s Schedule) Instant(loc *time.Location) (time.Time, error) {
	if !s.IsComplete() {
		return time.Time{}, ErrPartialSchedule
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeOfDayLayouts {
		t, err := time.ParseInLocation("2006-01-02 "+layout, s.Date+" "+s.Time, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidSchedule
}

func (s Schedule) validate() error {
	if s.Date != "" {
		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			return ErrInvalidSchedule
		}
	}
	if s.Time != "" {
		for _, layout := range timeOfDayLayouts {
			if _, err := time.Parse(layout, s.Time); err == nil {
				return nil
			}
		}
		return ErrInvalidSchedule
	}
	return nil
}

// Draft is the post being composed. Every method returns a new Draft and
// leaves the receiver untouched.
type Draft struct {
	Content  string      `json:"content"`
	Media    []MediaItem `json:"media"`
	Selected []int64     `json:"selected_accounts"`
	Schedule Schedule    `json:"schedule"`
}

func (d Draft) clone() Draft {
	out := d
	out.Media = append([]MediaItem(nil), d.Media...)
	out.Selected = append([]int64(nil), d.Selected...)
	return out
}

func (d Draft) WithContent(content string) Draft {
	out := d.clone()
	out.Content = content
	return out
}

func (d Draft) WithSchedule(s Schedule) Draft {
	out := d.clone()
	out.Schedule = Schedule{Date: strings.TrimSpace(s.Date), Time: strings.TrimSpace(s.Time)}
	return out
}

// WithSelection replaces the whole selection set.
func (d Draft) WithSelection(ids []int64) Draft {
	out := d.clone()
	out.Selected = out.Selected[:0]
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out.Selected = append(out.Selected, id)
	}
	return out
}

func (d Draft) IsSelected(id int64) bool {
	for _, s := range d.Selected {
		if s == id {
			return true
		}
	}
	return false
}

// Toggle adds id to the selection, or removes it when already present.
func (d Draft) Toggle(id int64) Draft {
	out := d.clone()
	for i, s := range out.Selected {
		if s == id {
			out.Selected = append(out.Selected[:i], out.Selected[i+1:]...)
			return out
		}
	}
	out.Selected = append(out.Selected, id)
	return out
}

func (d Draft) WithMedia(items ...MediaItem) Draft {
	out := d.clone()
	out.Media = append(out.Media, items...)
	return out
}

// WithoutMedia drops the item with the given id and keeps the order of the rest.
func (d Draft) WithoutMedia(id string) Draft {
	out := d.clone()
	out.Media = out.Media[:0]
	for _, m := range d.Media {
		if m.ID != id {
			out.Media = append(out.Media, m)
		}
	}
	return out
}

func (d Draft) MediaByID(id string) (MediaItem, bool) {
	for _, m := range d.Media {
		if m.ID == id {
			return m, true
		}
	}
	return MediaItem{}, false
}

func (d Draft) updateMedia(id string, fn func(*MediaItem)) (Draft, bool) {
	for i := range d.Media {
		if d.Media[i].ID == id {
			out := d.clone()
			fn(&out.Media[i])
			return out, true
		}
	}
	return d, false
}

func (d Draft) MarkUploading(id string) (Draft, bool) {
	return d.updateMedia(id, func(m *MediaItem) {
		m.State = StateUploading
	})
}

// ResolveMedia swaps the preview reference of an item for its remote URI.
func (d Draft) ResolveMedia(id, remoteURL string) (Draft, bool) {
	return d.updateMedia(id, func(m *MediaItem) {
		m.State = StateResolved
		m.URL = remoteURL
	})
}

func (d Draft) HasPendingMedia() bool {
	for _, m := range d.Media {
		if !m.Resolved() {
			return true
		}
	}
	return false
}

func (d Draft) IsEmpty() bool {
	return strings.TrimSpace(d.Content) == "" && len(d.Media) == 0
}

// Reset clears what was posted. The account selection stays with the active profile.
func (d Draft) Reset() Draft {
	return Draft{Selected: append([]int64(nil), d.Selected...)}
}
