// Package urlx parses the loose URL-ish strings users actually type.
// It distinguishes "human" input like example.com from strict URLs and
// defines the sentinel value meaning "no URL set yet".
package urlx

import (
	"errors"
	"net/url"
	"strings"
)

// Sentinel is the reserved URL value meaning "unset".
const Sentinel = "-"

// DefaultScheme is prepended to scheme-less human input.
const DefaultScheme = "https"

var (
	// ErrNotHuman is returned when input cannot be read as a human URL.
	ErrNotHuman = errors.New("urlx: not a recognizable URL")
)

// IsValid reports whether s is a usable absolute URL.
// The sentinel is never valid.
func IsValid(s string) bool {
	if s == Sentinel || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return false
	}
	// file URLs carry their target in the path, not the host.
	if u.Scheme == "file" {
		return u.Path != ""
	}
	return u.Host != ""
}

// ParseHuman parses tolerant user input: bare domains get the default
// scheme, localhost and IPs are accepted, anything with embedded
// whitespace is rejected.
func ParseHuman(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == Sentinel {
		return nil, ErrNotHuman
	}
	if strings.ContainsAny(s, " \t\n") {
		return nil, ErrNotHuman
	}
	if !strings.Contains(s, "://") {
		s = DefaultScheme + "://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, ErrNotHuman
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, ErrNotHuman
	}
	if !plausibleHost(u.Hostname()) {
		return nil, ErrNotHuman
	}
	return u, nil
}

// plausibleHost accepts dotted names, localhost, and anything that looks
// like an IP literal. Single bare words ("foo") are more likely search
// terms than hosts.
func plausibleHost(host string) bool {
	if host == "" {
		return false
	}
	if host == "localhost" {
		return true
	}
	if strings.Contains(host, ".") || strings.Contains(host, ":") {
		return true
	}
	return false
}

// Normalize renders u canonically: lowercased scheme and host, a "/"
// path when empty. Explicit ports are preserved even when they match the
// scheme default (http://example.com:80 stays :80).
func Normalize(u *url.URL) string {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Host = strings.ToLower(c.Host)
	if c.Path == "" {
		c.Path = "/"
	}
	return c.String()
}

// Resolve maps raw text-field input to a bound URL value:
// tolerant parse wins and is normalized; failing that, input that is
// already a strict URL passes through untouched; everything else is the
// sentinel.
func Resolve(raw string) string {
	if u, err := ParseHuman(raw); err == nil {
		return Normalize(u)
	}
	trimmed := strings.TrimSpace(raw)
	if IsValid(trimmed) {
		return trimmed
	}
	return Sentinel
}
