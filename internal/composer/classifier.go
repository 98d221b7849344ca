package composer

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".avi": {}, ".mkv": {}, ".webm": {},
}

type embedProvider struct {
	hosts    []string
	patterns []*regexp.Regexp
	template string
}

var embedProviders = []embedProvider{
	{
		// youtube
		hosts: []string{"youtube.com", "www.youtube.com", "m.youtube.com", "music.youtube.com", "youtu.be", "www.youtube-nocookie.com", "youtube-nocookie.com"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`youtube(?:-nocookie)?\.com/watch\?(?:.*&)?v=([A-Za-z0-9_-]{11})`),
			regexp.MustCompile(`youtube(?:-nocookie)?\.com/(?:embed|shorts|live|v)/([A-Za-z0-9_-]{11})`),
			regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
		},
		template: "https://www.youtube.com/embed/",
	},
	{
		// vimeo
		hosts: []string{"vimeo.com", "www.vimeo.com", "player.vimeo.com"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`vimeo\.com/(?:video/|channels/[^/]+/|groups/[^/]+/videos/)?(\d+)`),
		},
		template: "https://player.vimeo.com/video/",
	},
}

// Classify decides the kind of a remote media URL.
// A video file extension wins over the host; unknown URLs are images.
func Classify(rawURL string) MediaKind {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return KindImage
	}

	if _, ok := videoExtensions[strings.ToLower(path.Ext(u.Path))]; ok {
		return KindVideo
	}

	if providerFor(u.Hostname()) != nil {
		return KindEmbed
	}

	return KindImage
}

// ToEmbeddable rewrites a recognised provider URL into its embed player URL.
// Anything else is returned unchanged.
func ToEmbeddable(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	u, err := url.Parse(trimmed)
	if err != nil {
		return rawURL
	}

	p := providerFor(u.Hostname())
	if p == nil {
		return rawURL
	}

	// hosts compare case-insensitively, video ids do not
	target := strings.ToLower(u.Host) + u.RequestURI()
	for _, re := range p.patterns {
		if m := re.FindStringSubmatch(target); len(m) == 2 {
			return p.template + m[1]
		}
	}
	return rawURL
}

func providerFor(host string) *embedProvider {
	host = strings.ToLower(host)
	for i := range embedProviders {
		for _, h := range embedProviders[i].hosts {
			if host == h {
				return &embedProviders[i]
			}
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
