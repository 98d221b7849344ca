package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want MediaKind
	}{
		{"mp4 file", "https://cdn.example.com/clips/launch.mp4", KindVideo},
		{"upper case extension", "https://cdn.example.com/clips/LAUNCH.MOV", KindVideo},
		{"webm with query", "https://cdn.example.com/a.webm?sig=abc", KindVideo},
		{"mkv", "http://files.example.org/x.mkv", KindVideo},
		{"avi", "http://files.example.org/x.avi", KindVideo},
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", KindEmbed},
		{"youtube short link", "https://youtu.be/abc12345678", KindEmbed},
		{"youtube mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", KindEmbed},
		{"vimeo", "https://vimeo.com/76979871", KindEmbed},
		{"vimeo player", "https://player.vimeo.com/video/76979871", KindEmbed},
		{"image", "https://cdn.example.com/photo.jpg", KindImage},
		{"no extension", "https://example.com/some/page", KindImage},
		{"lookalike host", "https://notyoutube.com/watch?v=dQw4w9WgXcQ", KindImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.url))
		})
	}
}

func TestToEmbeddable(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/abc12345678", "https://www.youtube.com/embed/abc12345678"},
		{"short link with time", "https://youtu.be/abc12345678?t=42", "https://www.youtube.com/embed/abc12345678"},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"watch with extra params", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"shorts", "https://youtube.com/shorts/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"already embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"vimeo", "https://vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
		{"vimeo channel", "https://vimeo.com/channels/staffpicks/76979871", "https://player.vimeo.com/video/76979871"},
		{"youtube channel page", "https://www.youtube.com/@somechannel", "https://www.youtube.com/@somechannel"},
		{"unknown host", "https://example.com/video/123", "https://example.com/video/123"},
		{"upper case short link", "https://YOUTU.BE/abc12345678", "https://www.youtube.com/embed/abc12345678"},
		{"upper case watch host", "https://WWW.YouTube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"upper case vimeo host", "https://Vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToEmbeddable(tt.url))
		})
	}
}

func TestMediaKind_ContentKind(t *testing.T) {
	assert.Equal(t, KindVideo, KindEmbed.ContentKind())
	assert.Equal(t, KindImage, KindImage.ContentKind())
	assert.Equal(t, KindVideo, KindVideo.ContentKind())
}
