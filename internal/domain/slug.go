package domain

import (
	"context"
	"fmt"
	"strings"
)

const maxSlugBase = 200

// Slugify lowers the text to an ASCII, hyphen-separated token suitable for
// URLs: letters and digits are kept, runs of anything else collapse into a
// single hyphen, and the result is capped at 200 characters.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	out := b.String()
	if len(out) > maxSlugBase {
		out = strings.Trim(out[:maxSlugBase], "-")
	}
	return out
}

// UniqueSlug derives a slug from base and probes exists until it finds a free
// candidate, appending -1, -2, ... on collision. Pure apart from the probe;
// the caller persists the result.
func UniqueSlug(ctx context.Context, base string, exists func(context.Context, string) (bool, error)) (string, error) {
	root := Slugify(base)
	if root == "" {
		root = "untitled"
	}
	candidate := root
	for n := 1; ; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", root, n)
	}
}
