package website

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webwall/internal/urlx"
)

func TestNew_StartsUnset(t *testing.T) {
	w := New()
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, urlx.Sentinel, w.URL)
	assert.False(t, w.IsURLValid())
}

func TestIsURLValid(t *testing.T) {
	w := New()
	w.URL = "https://example.com"
	assert.True(t, w.IsURLValid())
	w.URL = urlx.Sentinel
	assert.False(t, w.IsURLValid())
}

func TestEqual_IgnoresIdentity(t *testing.T) {
	a := Website{URL: "https://example.com/", Title: "Example"}
	b := Website{ID: "other", URL: "https://example.com/", Title: "Example"}
	assert.True(t, a.Equal(b))

	b.CSS = "body { background: black }"
	assert.False(t, a.Equal(b))
}

func TestDisplayTitle(t *testing.T) {
	w := Website{URL: "https://news.ycombinator.com/front", Title: ""}
	assert.Equal(t, "news.ycombinator.com", w.DisplayTitle())

	w.Title = "HN"
	assert.Equal(t, "HN", w.DisplayTitle())

	unset := Website{URL: urlx.Sentinel}
	assert.Equal(t, "(no URL)", unset.DisplayTitle())
}

func TestInvertColors_Cycle(t *testing.T) {
	assert.Equal(t, InvertAlways, InvertNever.Next())
	assert.Equal(t, InvertDarkMode, InvertAlways.Next())
	assert.Equal(t, InvertNever, InvertDarkMode.Next())
}

func TestInvertColors_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(InvertDarkMode)
	require.NoError(t, err)
	assert.Equal(t, `"dark-mode"`, string(data))

	var mode InvertColors
	require.NoError(t, json.Unmarshal([]byte(`"always"`), &mode))
	assert.Equal(t, InvertAlways, mode)

	// Unknown names degrade to never rather than erroring.
	require.NoError(t, json.Unmarshal([]byte(`"sepia"`), &mode))
	assert.Equal(t, InvertNever, mode)
}
