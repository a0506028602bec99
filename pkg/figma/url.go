package figma

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Match patterns like:
// https://www.figma.com/file/ABC123/Design-Name
// https://www.figma.com/design/ABC123/Design-Name
// Anchored to ensure the entire URL matches the expected pattern and prevent bypass attacks.
var fileKeyPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)

// nodeIDPattern matches the dashed node ID spelling used in shared URLs
// (11933-305884); the API expects the colon spelling (11933:305884).
var nodeIDPattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL format is invalid or if the URL doesn't match the expected Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", errors.New("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}
	return matches[1], nil
}

// ExtractNodeIDs extracts node IDs from a Figma URL: the node-id query
// parameter, the hash fragment, or a /nodes/<ids> path segment. Dashed IDs are
// normalized to the colon spelling the API expects, comma-separated lists are
// split, and duplicates are dropped keeping first occurrence. A URL without
// node IDs returns an empty slice and no error.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse Figma URL")
	}

	raw := u.Query().Get("node-id")
	if raw == "" && u.Fragment != "" {
		raw = u.Fragment
	}
	if raw == "" {
		segments := strings.Split(u.Path, "/")
		for i, seg := range segments {
			if seg == "nodes" && i+1 < len(segments) {
				raw = segments[i+1]
				break
			}
		}
	}
	if raw == "" {
		return nil, nil
	}

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := nodeIDPattern.FindStringSubmatch(part); m != nil {
			part = m[1] + ":" + m[2]
		}
		ids = append(ids, part)
	}
	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs drops repeated IDs, keeping first-occurrence order.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
