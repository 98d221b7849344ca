package composer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/models"
)

type DispatchMode string

const (
	ModePublish  DispatchMode = "publish"
	ModeSchedule DispatchMode = "schedule"
)

// DispatchRequest is built fresh for every dispatch and never stored.
type DispatchRequest struct {
	Mode        DispatchMode `json:"mode"`
	Targets     []Target     `json:"targets"`
	Content     string       `json:"content"`
	MediaURLs   []string     `json:"media_urls"`
	ScheduledAt *time.Time   `json:"scheduled_at,omitempty"`
}

type DispatchResult struct {
	Mode        DispatchMode `json:"mode"`
	Targets     []Target     `json:"targets"`
	ScheduledAt *time.Time   `json:"scheduled_at,omitempty"`
}

// AccountLookup resolves an account id against the active profile.
type AccountLookup interface {
	Lookup(id int64) (*models.SocialAccount, bool)
}

// BuildDispatch validates d and turns it into the request sent to the backend.
func BuildDispatch(d Draft, accounts AccountLookup, loc *time.Location) (*DispatchRequest, error) {
	if d.IsEmpty() {
		return nil, ErrEmptyDraft
	}
	if len(d.Selected) == 0 {
		return nil, ErrNoAccounts
	}
	if d.Schedule.IsPartial() {
		return nil, ErrPartialSchedule
	}
	if d.HasPendingMedia() {
		return nil, ErrUploadsPending
	}

	mediaURLs := make([]string, 0, len(d.Media))
	var embedLinks []string
	for _, m := range d.Media {
		if m.IsEmbed() {
			embedLinks = append(embedLinks, m.URL)
			continue
		}
		mediaURLs = append(mediaURLs, m.URL)
	}

	// stale ids are dropped rather than failing the dispatch
	targets := make([]Target, 0, len(d.Selected))
	for _, id := range d.Selected {
		acc, ok := accounts.Lookup(id)
		if !ok {
			slog.Info("dropping unknown account from dispatch", "account_id", id)
			continue
		}
		targets = append(targets, Target{Platform: acc.Platform, AccountID: acc.ID})
	}
	if len(targets) == 0 {
		return nil, ErrNoAccounts
	}

	req := &DispatchRequest{
		Mode:      ModePublish,
		Targets:   targets,
		Content:   appendEmbedLinks(d.Content, embedLinks),
		MediaURLs: mediaURLs,
	}

	if d.Schedule.IsComplete() {
		when, err := d.Schedule.Instant(loc)
		if err != nil {
			return nil, err
		}
		req.Mode = ModeSchedule
		req.ScheduledAt = &when
	}
	return req, nil
}

// appendEmbedLinks puts each link on its own line, after a blank line.
func appendEmbedLinks(content string, links []string) string {
	if len(links) == 0 {
		return content
	}
	joined := strings.Join(links, "\n")
	if strings.TrimSpace(content) == "" {
		return joined
	}
	return content + "\n\n" + joined
}

// Dispatch publishes or schedules the draft. On success the draft is cleared;
// on failure it is left exactly as it was so the user can retry.
func (c *Composer) Dispatch(ctx context.Context) (*DispatchResult, error) {
	c.mu.Lock()
	if c.dispatching {
		c.mu.Unlock()
		return nil, ErrDispatchInFlight
	}
	req, err := BuildDispatch(c.draft, c.resolver, c.opts.Location)
	if err != nil {
		c.notifier.Error(userMessage(err, "Unable to send post"))
		c.mu.Unlock()
		return nil, err
	}
	c.dispatching = true
	c.mu.Unlock()

	var fallback, success string
	switch req.Mode {
	case ModeSchedule:
		fallback, success = "Failed to schedule post", "Post scheduled successfully"
		err = c.backend.SchedulePublish(ctx, req.Targets, req.Content, *req.ScheduledAt, req.MediaURLs)
	default:
		fallback, success = "Failed to publish post", "Post published successfully"
		err = c.backend.PublishNow(ctx, req.Targets, req.Content, req.MediaURLs)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatching = false

	if err != nil {
		slog.Error("dispatch failed", "mode", req.Mode, "targets", len(req.Targets), "error", err)
		c.notifier.Error(userMessage(err, fallback))
		return nil, err
	}

	c.draft = c.draft.Reset()
	c.notifier.Success(success)
	return &DispatchResult{
		Mode:        req.Mode,
		Targets:     req.Targets,
		ScheduledAt: req.ScheduledAt,
	}, nil
}
