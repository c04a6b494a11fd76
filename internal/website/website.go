// Package website provides the Website record and the controller that
// owns the persisted site list for the wallpaper daemon.
package website

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"webwall/internal/urlx"
)

// InvertColors selects when the rendered site's colors are inverted.
type InvertColors int

const (
	InvertNever InvertColors = iota
	InvertAlways
	InvertDarkMode
)

var invertNames = map[InvertColors]string{
	InvertNever:    "never",
	InvertAlways:   "always",
	InvertDarkMode: "dark-mode",
}

func (i InvertColors) String() string {
	if s, ok := invertNames[i]; ok {
		return s
	}
	return "never"
}

// Next cycles to the following mode, wrapping after dark-mode.
func (i InvertColors) Next() InvertColors {
	switch i {
	case InvertNever:
		return InvertAlways
	case InvertAlways:
		return InvertDarkMode
	default:
		return InvertNever
	}
}

// MarshalJSON encodes the mode as its string name.
func (i InvertColors) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts the string names; unknown values map to never.
func (i *InvertColors) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	for mode, name := range invertNames {
		if name == s {
			*i = mode
			return nil
		}
	}
	*i = InvertNever
	return nil
}

// Website is one displayable site: URL plus display and style overrides.
// URL is either a valid absolute URL or the urlx sentinel.
type Website struct {
	ID             string       `json:"id"`
	URL            string       `json:"url"`
	Title          string       `json:"title,omitempty"`
	IsCurrent      bool         `json:"isCurrent"`
	UsePrintStyles bool         `json:"usePrintStyles,omitempty"`
	InvertColors   InvertColors `json:"invertColors"`
	CSS            string       `json:"css,omitempty"`
	JS             string       `json:"js,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// New returns a transient website with a fresh ID and an unset URL.
// It is not persisted until handed to the controller.
func New() *Website {
	return &Website{
		ID:        uuid.NewString(),
		URL:       urlx.Sentinel,
		CreatedAt: time.Now().UTC(),
	}
}

// IsURLValid reports whether the record's URL is usable.
func (w *Website) IsURLValid() bool {
	return urlx.IsValid(w.URL)
}

// Equal compares the user-editable fields, ignoring identity and
// bookkeeping. Used to detect unsaved changes against a snapshot.
func (w Website) Equal(other Website) bool {
	return w.URL == other.URL &&
		w.Title == other.Title &&
		w.UsePrintStyles == other.UsePrintStyles &&
		w.InvertColors == other.InvertColors &&
		w.CSS == other.CSS &&
		w.JS == other.JS
}

// DisplayTitle falls back to the URL's host (or the URL itself) when no
// title is set.
func (w Website) DisplayTitle() string {
	if w.Title != "" {
		return w.Title
	}
	if u, err := url.Parse(w.URL); err == nil && u.Host != "" {
		return u.Host
	}
	if w.URL == urlx.Sentinel {
		return "(no URL)"
	}
	return w.URL
}
