package explorers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tranvictor/explink/common"
)

// Validate checks that a generated link has a scheme, a host and a path
// without empty segments, and returns it without surrounding whitespace.
func Validate(link string) (string, error) {
	candidate := strings.TrimSpace(link)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("an invalid explorer URL was generated: %s: %w (%s)", link, common.ErrMalformedURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" || parsed.Path == "" {
		return "", fmt.Errorf("an invalid explorer URL was generated: %s: %w", link, common.ErrMalformedURL)
	}
	if strings.Contains(parsed.Path, "//") {
		return "", fmt.Errorf("explorer URL %s has an empty path segment: %w", link, common.ErrMalformedURL)
	}
	return candidate, nil
}
