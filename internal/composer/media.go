package composer

import (
	"fmt"
	"strings"

	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MediaKind is decided once when an item enters the draft.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindEmbed MediaKind = "embed"
)

// ContentKind reports what the item renders as. Embeds are always video.
func (k MediaKind) ContentKind() MediaKind {
	if k == KindEmbed {
		return KindVideo
	}
	return k
}

type MediaSource string

const (
	SourceUpload  MediaSource = "upload"
	SourceURL     MediaSource = "url"
	SourceLibrary MediaSource = "library"
)

type MediaState string

const (
	StatePending   MediaState = "pending"
	StateUploading MediaState = "uploading"
	StateResolved  MediaState = "resolved"
)

type MediaItem struct {
	ID     string      `json:"id"`
	Source MediaSource `json:"source"`
	Kind   MediaKind   `json:"kind"`
	State  MediaState  `json:"state"`
	// URL is the local preview reference until the item resolves, then the remote URI.
	URL       string `json:"url"`
	SourceURL string `json:"source_url,omitempty"`
	Name      string `json:"name,omitempty"`
	AssetID   int64  `json:"asset_id,omitempty"`
}

func (m MediaItem) IsEmbed() bool {
	return m.Kind == KindEmbed
}

func (m MediaItem) Resolved() bool {
	return m.State == StateResolved
}

// FileUpload is a local file handed to the ingestion pipeline.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

func (f FileUpload) size() int64 {
	if n := int64(len(f.Data)); n > f.Size {
		return n
	}
	return f.Size
}

// detectKind sniffs the file header and falls back to the declared MIME type.
func detectKind(f FileUpload) MediaKind {
	if len(f.Data) > 0 {
		switch {
		case filetype.IsVideo(f.Data):
			return KindVideo
		case filetype.IsImage(f.Data):
			return KindImage
		}
	}
	if strings.HasPrefix(strings.ToLower(f.ContentType), "video/") {
		return KindVideo
	}
	return KindImage
}

func newItemID() string {
	return gonanoid.Must()
}

func previewRef(id, name string) string {
	return fmt.Sprintf("local://%s/%s", id, name)
}
