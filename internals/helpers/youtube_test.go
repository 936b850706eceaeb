package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeEmbedSrc(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://youtu.be/abc123", "https://www.youtube.com/embed/abc123"},
		{"https://youtu.be/abc123?t=5", "https://www.youtube.com/embed/abc123"},
		{"https://www.youtube.com/watch?v=xyz789", "https://www.youtube.com/embed/xyz789"},
		{"https://www.youtube.com/watch?v=xyz789&t=10s", "https://www.youtube.com/embed/xyz789"},
		{"https://example.com/video", ""},
		{"https://www.youtube.com/watch?list=PL123", ""},
		// Parámetros que terminan en "v" no son el id del video.
		{"https://www.youtube.com/watch?fv=2&x=1", ""},
		{"https://www.youtube.com/watch?v=xyz789&cv=1", "https://www.youtube.com/embed/xyz789"},
		{"https://www.youtube.com/watch?t=10&v=xyz789", "https://www.youtube.com/embed/xyz789"},
		{"https://www.youtube.com/watch?v=", ""},
		{"https://youtu.be/", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, YouTubeEmbedSrc(tc.in), "YouTubeEmbedSrc(%q)", tc.in)
	}
}
