package website

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"webwall/internal/telemetry"
)

// ErrNotFound is returned when no website matches the given ID.
var ErrNotFound = errors.New("website: not found")

// ErrInvalidURL is returned when adding or updating a record whose URL
// is unset or unparsable.
var ErrInvalidURL = errors.New("website: URL is not valid")

// Controller owns the in-memory site list and keeps the store in sync.
// Every mutation persists before returning.
type Controller struct {
	mu    sync.Mutex
	store *Store
	sites []*Website
}

// NewController loads the list from the store.
func NewController(store *Store) (*Controller, error) {
	sites, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Controller{store: store, sites: sites}, nil
}

// All returns a copy of the site list in stored order.
func (c *Controller) All() []*Website {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Website, len(c.sites))
	copy(out, c.sites)
	return out
}

// Get returns the website with the given ID.
func (c *Controller) Get(id string) (*Website, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.sites {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new website and persists. The first site added becomes
// current automatically.
func (c *Controller) Add(ctx context.Context, w *Website) error {
	_, end := telemetry.Span(ctx, "controller.add", attribute.String("website.url", w.URL))
	defer end()

	if !w.IsURLValid() {
		return ErrInvalidURL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sites) == 0 {
		w.IsCurrent = true
	}
	c.sites = append(c.sites, w)
	return c.persistLocked()
}

// Update replaces the stored record with the same ID and persists.
func (c *Controller) Update(ctx context.Context, w *Website) error {
	_, end := telemetry.Span(ctx, "controller.update", attribute.String("website.id", w.ID))
	defer end()

	if !w.IsURLValid() {
		return ErrInvalidURL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.sites {
		if existing.ID == w.ID {
			w.IsCurrent = existing.IsCurrent
			c.sites[i] = w
			return c.persistLocked()
		}
	}
	return ErrNotFound
}

// Remove deletes the website with the given ID. If it was current, the
// first remaining site becomes current.
func (c *Controller) Remove(ctx context.Context, id string) error {
	_, end := telemetry.Span(ctx, "controller.remove", attribute.String("website.id", id))
	defer end()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, w := range c.sites {
		if w.ID != id {
			continue
		}
		wasCurrent := w.IsCurrent
		c.sites = append(c.sites[:i], c.sites[i+1:]...)
		if wasCurrent && len(c.sites) > 0 {
			c.sites[0].IsCurrent = true
		}
		return c.persistLocked()
	}
	return ErrNotFound
}

// MakeCurrent marks the given site current and clears the flag on all
// others. Exactly one site is current while the list is non-empty.
func (c *Controller) MakeCurrent(ctx context.Context, id string) error {
	_, end := telemetry.Span(ctx, "controller.make_current", attribute.String("website.id", id))
	defer end()

	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	for _, w := range c.sites {
		if w.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	for _, w := range c.sites {
		w.IsCurrent = w.ID == id
	}
	return c.persistLocked()
}

// Current returns the current website, or nil when the list is empty.
func (c *Controller) Current() *Website {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.sites {
		if w.IsCurrent {
			return w
		}
	}
	return nil
}

// Len returns the number of stored websites.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sites)
}

// FindByIDPrefix resolves a unique ID prefix to a website.
func (c *Controller) FindByIDPrefix(prefix string) (*Website, error) {
	if prefix == "" {
		return nil, ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var match *Website
	for _, w := range c.sites {
		if len(w.ID) >= len(prefix) && w.ID[:len(prefix)] == prefix {
			if match != nil {
				return nil, fmt.Errorf("website: ID prefix %q is ambiguous", prefix)
			}
			match = w
		}
	}
	if match == nil {
		return nil, ErrNotFound
	}
	return match, nil
}

func (c *Controller) persistLocked() error {
	return c.store.Save(c.sites)
}
