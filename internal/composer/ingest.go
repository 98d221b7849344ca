package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/maheshrc27/postflow-composer/internal/models"
)

type FileRejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type IngestResult struct {
	Uploaded []MediaItem     `json:"uploaded"`
	Rejected []FileRejection `json:"rejected"`
	Failed   []FileRejection `json:"failed"`
}

type queuedUpload struct {
	id     string
	file   FileUpload
	ticket uint64
}

// IngestFiles adds local files to the draft. Oversized files are rejected on
// their own; the others are inserted right away with a preview reference and
// then uploaded one after another in the order they were given.
func (c *Composer) IngestFiles(ctx context.Context, files []FileUpload) *IngestResult {
	res := &IngestResult{}
	queue := make([]queuedUpload, 0, len(files))

	c.mu.Lock()
	for _, f := range files {
		if c.opts.MaxUploadSize > 0 && f.size() > c.opts.MaxUploadSize {
			reason := fmt.Sprintf("%s is larger than %s", f.Name, humanize.IBytes(uint64(c.opts.MaxUploadSize)))
			res.Rejected = append(res.Rejected, FileRejection{Name: f.Name, Reason: reason})
			c.notifier.Error(reason)
			continue
		}

		item := MediaItem{
			ID:     newItemID(),
			Source: SourceUpload,
			Kind:   detectKind(f),
			State:  StatePending,
			Name:   f.Name,
		}
		item.URL = previewRef(item.ID, f.Name)
		c.draft = c.draft.WithMedia(item)
		queue = append(queue, queuedUpload{id: item.ID, file: f, ticket: c.nextTicket})
		c.nextTicket++
	}
	c.mu.Unlock()

	for _, q := range queue {
		item, err := c.upload(ctx, q)
		switch {
		case err != nil:
			res.Failed = append(res.Failed, FileRejection{Name: q.file.Name, Reason: err.Error()})
		case item != nil:
			res.Uploaded = append(res.Uploaded, *item)
		}
	}
	return res
}

// waitTurn blocks until every upload ticketed before t has finished.
func (c *Composer) waitTurn(t uint64) {
	c.uploadMu.Lock()
	for c.serving != t {
		c.uploadTurn.Wait()
	}
	c.uploadMu.Unlock()
}

func (c *Composer) finishTurn() {
	c.uploadMu.Lock()
	c.serving++
	c.uploadMu.Unlock()
	c.uploadTurn.Broadcast()
}

// upload waits for the item's ticket and keeps the turn for the whole round
// trip, so at most one request per composer is in flight and items go out in
// draft order across batches. A nil item and nil error mean the item left the
// draft before its turn came.
func (c *Composer) upload(ctx context.Context, q queuedUpload) (*MediaItem, error) {
	c.waitTurn(q.ticket)
	defer c.finishTurn()

	c.mu.Lock()
	next, ok := c.draft.MarkUploading(q.id)
	if ok {
		c.draft = next
	}
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	uri, err := c.backend.UploadMedia(ctx, q.file)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		slog.Info("media upload failed", "file", q.file.Name, "error", err)
		c.draft = c.draft.WithoutMedia(q.id)
		msg := userMessage(err, fmt.Sprintf("Failed to upload %s", q.file.Name))
		c.notifier.Error(msg)
		return nil, errors.New(msg)
	}

	next, ok = c.draft.ResolveMedia(q.id, uri)
	if !ok {
		// removed or reset while uploading
		return nil, nil
	}
	c.draft = next
	item, _ := next.MediaByID(q.id)
	return &item, nil
}

// IngestURL adds remotely hosted media. Nothing is uploaded.
func (c *Composer) IngestURL(rawURL string) (MediaItem, error) {
	u := strings.TrimSpace(rawURL)
	if !isHTTPURL(u) {
		c.notifier.Error(ErrInvalidURL.Message)
		return MediaItem{}, ErrInvalidURL
	}

	item := MediaItem{
		ID:        newItemID(),
		Source:    SourceURL,
		Kind:      Classify(u),
		State:     StateResolved,
		URL:       u,
		SourceURL: u,
	}
	if item.IsEmbed() {
		item.URL = ToEmbeddable(u)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithMedia(item)
	return item, nil
}

// IngestFromLibrary reuses an asset that was uploaded earlier.
func (c *Composer) IngestFromLibrary(asset *models.MediaAsset) MediaItem {
	kind := KindImage
	if asset.IsVideo() {
		kind = KindVideo
	}
	item := MediaItem{
		ID:      newItemID(),
		Source:  SourceLibrary,
		Kind:    kind,
		State:   StateResolved,
		URL:     asset.FileURL,
		Name:    asset.FileName,
		AssetID: asset.ID,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithMedia(item)
	return item
}

// Remove drops one media item. Unknown ids are ignored.
func (c *Composer) Remove(itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.draft.MediaByID(itemID); !ok {
		return false
	}
	c.draft = c.draft.WithoutMedia(itemID)
	return true
}
