package composer

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListAccounts(ctx context.Context) ([]*models.SocialAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockBackend) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *MockBackend) UploadMedia(ctx context.Context, file FileUpload) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) ListLibraryMedia(ctx context.Context) ([]*models.MediaAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MediaAsset), args.Error(1)
}

func (m *MockBackend) DeleteLibraryMedia(ctx context.Context, assetID int64) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockBackend) PublishNow(ctx context.Context, targets []Target, content string, mediaURLs []string) error {
	args := m.Called(ctx, targets, content, mediaURLs)
	return args.Error(0)
}

func (m *MockBackend) SchedulePublish(ctx context.Context, targets []Target, content string, when time.Time, mediaURLs []string) error {
	args := m.Called(ctx, targets, content, when, mediaURLs)
	return args.Error(0)
}

func testProfiles() []*models.Profile {
	return []*models.Profile{
		{ID: 1, Name: "Brand"},
		{ID: 2, Name: "Personal"},
		{ID: 3, Name: "Empty"},
	}
}

func testAccounts() []*models.SocialAccount {
	return []*models.SocialAccount{
		{ID: 10, ProfileID: 1, Platform: models.PlatformTwitter, AccountName: "brand_x"},
		{ID: 11, ProfileID: 1, Platform: models.PlatformFacebook, AccountName: "Brand Page"},
		{ID: 20, ProfileID: 2, Platform: models.PlatformInstagram, AccountName: "me.insta"},
	}
}

func newTestComposer(t *testing.T, backend *MockBackend) *Composer {
	t.Helper()
	c := New(backend, Options{
		MaxUploadSize:   4718592,
		NotificationTTL: time.Minute,
		Location:        time.UTC,
	})
	t.Cleanup(c.Close)
	return c
}

// loadedComposer returns a composer with profile 1 (accounts 10 and 11) active.
func loadedComposer(t *testing.T, backend *MockBackend) *Composer {
	t.Helper()
	backend.On("ListProfiles", mock.Anything).Return(testProfiles(), nil).Once()
	backend.On("ListAccounts", mock.Anything).Return(testAccounts(), nil).Once()

	c := newTestComposer(t, backend)
	require.NoError(t, c.Load(context.Background()))
	return c
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func pngFile(name string) FileUpload {
	return FileUpload{Name: name, ContentType: "image/png", Size: int64(len(pngHeader)), Data: pngHeader}
}

func fileNamed(name string) interface{} {
	return mock.MatchedBy(func(f FileUpload) bool { return f.Name == name })
}
