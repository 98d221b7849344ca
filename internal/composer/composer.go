package composer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/maheshrc27/postflow-composer/internal/models"
)

type Options struct {
	MaxUploadSize   int64
	NotificationTTL time.Duration
	Location        *time.Location
}

// Composer owns one draft and drives it through ingestion and dispatch.
// It is safe for concurrent use; the draft lock is never held across a backend call.
type Composer struct {
	backend  Backend
	opts     Options
	notifier *Notifier

	mu          sync.Mutex
	draft       Draft
	resolver    *Resolver
	dispatching bool

	// uploads run one at a time, in the order their items entered the draft.
	// Tickets are issued under mu; serving is guarded by uploadMu.
	nextTicket uint64
	uploadMu   sync.Mutex
	uploadTurn *sync.Cond
	serving    uint64
}

func New(backend Backend, opts Options) *Composer {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	c := &Composer{
		backend:  backend,
		opts:     opts,
		notifier: NewNotifier(opts.NotificationTTL),
		resolver: NewResolver(nil, nil),
	}
	c.uploadTurn = sync.NewCond(&c.uploadMu)
	return c
}

// Load fetches profiles and accounts side by side and selects the first profile.
func (c *Composer) Load(ctx context.Context) error {
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
		profiles, profilesErr = c.backend.ListProfiles(ctx)
	}()
	go func() {
		defer wg.Done()
		accounts, accountsErr = c.backend.ListAccounts(ctx)
	}()
	wg.Wait()

	if err := errors.Join(profilesErr, accountsErr); err != nil {
		slog.Error("composer load failed", "error", err)
		c.notifier.Error(userMessage(err, "Failed to load accounts"))

		c.mu.Lock()
		c.resolver = NewResolver(nil, nil)
		c.draft = c.draft.WithSelection(nil)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolver = NewResolver(profiles, accounts)
	if len(profiles) > 0 {
		c.selectProfileLocked(profiles[0].ID)
	} else {
		c.draft = c.draft.WithSelection(nil)
	}
	return nil
}

// SelectProfile switches the active profile and selects all of its accounts.
func (c *Composer) SelectProfile(profileID int64) []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectProfileLocked(profileID)
}

func (c *Composer) selectProfileLocked(profileID int64) []int64 {
	ids := c.resolver.Select(profileID)
	c.draft = c.draft.WithSelection(ids)
	return ids
}

// ToggleAccount flips one account in the selection. It reports whether the
// account is selected afterwards.
func (c *Composer) ToggleAccount(accountID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = c.draft.Toggle(accountID)
	return c.draft.IsSelected(accountID)
}

func (c *Composer) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithContent(content)
}

// SetSchedule stores the schedule fields as given. A half filled schedule is
// accepted here and only rejected at dispatch.
func (c *Composer) SetSchedule(s Schedule) error {
	next := Draft{}.WithSchedule(s).Schedule
	if err := next.validate(); err != nil {
		c.notifier.Error(err.Error())
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithSchedule(next)
	return nil
}

func (c *Composer) ClearSchedule() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithSchedule(Schedule{})
}

// Draft returns a copy of the current draft.
func (c *Composer) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.clone()
}

func (c *Composer) Notification() *Notification {
	return c.notifier.Current()
}

func (c *Composer) Dismiss() {
	c.notifier.Dismiss()
}

// Library lists the user's previously uploaded media.
func (c *Composer) Library(ctx context.Context) ([]*models.MediaAsset, error) {
	assets, err := c.backend.ListLibraryMedia(ctx)
	if err != nil {
		c.notifier.Error(userMessage(err, "Failed to load media library"))
		return nil, err
	}
	return assets, nil
}

func (c *Composer) DeleteLibraryItem(ctx context.Context, assetID int64) error {
	if err := c.backend.DeleteLibraryMedia(ctx, assetID); err != nil {
		c.notifier.Error(userMessage(err, "Failed to delete media"))
		return err
	}
	c.notifier.Success("Media deleted")
	return nil
}

// Close stops the notification timer.
func (c *Composer) Close() {
	c.notifier.Stop()
}

type ContentBudget struct {
	Length    int             `json:"length"`
	Limit     int             `json:"limit"`
	Remaining int             `json:"remaining"`
	Platform  models.Platform `json:"platform,omitempty"`
}

// State is a consistent view of the composer for rendering.
type State struct {
	Draft         Draft                   `json:"draft"`
	ActiveProfile int64                   `json:"active_profile"`
	Profiles      []*models.Profile       `json:"profiles"`
	Accounts      []*models.SocialAccount `json:"accounts"`
	Budget        ContentBudget           `json:"budget"`
	Notification  *Notification           `json:"notification"`
	CanDispatch   bool                    `json:"can_dispatch"`
	Dispatching   bool                    `json:"dispatching"`
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.draft.clone()
	return State{
		Draft:         d,
		ActiveProfile: c.resolver.ActiveProfile(),
		Profiles:      c.resolver.Profiles(),
		Accounts:      c.resolver.Visible(),
		Budget:        c.budgetLocked(),
		Notification:  c.notifier.Current(),
		CanDispatch:   !c.dispatching && !d.IsEmpty() && len(d.Selected) > 0 && !d.Schedule.IsPartial() && !d.HasPendingMedia(),
		Dispatching:   c.dispatching,
	}
}

// ContentBudget reports the content length against the tightest limit among
// the selected platforms.
func (c *Composer) ContentBudget() ContentBudget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.budgetLocked()
}

func (c *Composer) budgetLocked() ContentBudget {
	b := ContentBudget{Length: utf8.RuneCountInString(c.draft.Content)}
	for _, id := range c.draft.Selected {
		acc, ok := c.resolver.Lookup(id)
		if !ok {
			continue
		}
		limit := acc.Platform.CharacterLimit()
		if limit > 0 && (b.Limit == 0 || limit < b.Limit) {
			b.Limit = limit
			b.Platform = acc.Platform
		}
	}
	if b.Limit > 0 {
		b.Remaining = b.Limit - b.Length
	}
	return b
}
