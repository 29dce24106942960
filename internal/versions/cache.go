// Package versions compares tool versions and memoizes the results.
package versions

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/ror-installer/internal/messages"
)

type cacheKey struct {
	current string
	minimum string
}

// Cache memoizes LessThan comparisons for the lifetime of one process.
// Construct one per process and pass it to every component that gates on versions.
type Cache struct {
	mu      sync.Mutex
	results map[cacheKey]bool
	misses  int
}

// NewCache returns an empty comparison cache.
func NewCache() *Cache {
	return &Cache{results: make(map[cacheKey]bool)}
}

// LessThan reports whether current is older than minimum.
// Both values may carry a leading "v" and surrounding whitespace.
func (c *Cache) LessThan(current string, minimum string) (bool, error) {
	key := cacheKey{current: strings.TrimSpace(current), minimum: strings.TrimSpace(minimum)}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.results == nil {
		c.results = make(map[cacheKey]bool)
	}
	if cached, ok := c.results[key]; ok {
		return cached, nil
	}

	currentVersion, err := semver.NewVersion(key.current)
	if err != nil {
		return false, fmt.Errorf(messages.VersionsInvalidFmt, key.current, err)
	}
	minimumVersion, err := semver.NewVersion(key.minimum)
	if err != nil {
		return false, fmt.Errorf(messages.VersionsInvalidFmt, key.minimum, err)
	}
	less := currentVersion.LessThan(minimumVersion)
	c.results[key] = less
	c.misses++
	return less, nil
}

// Computed returns how many comparisons were evaluated rather than served from cache.
func (c *Cache) Computed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

var versionToken = regexp.MustCompile(`v?\d+(?:\.\d+){0,2}(?:-[0-9A-Za-z.-]+)?`)

// Extract returns the first version-looking token in tool output such as
// "v20.11.1" or "npm 10.2.4". ok is false when no token is present.
func Extract(output string) (string, bool) {
	token := versionToken.FindString(output)
	if token == "" {
		return "", false
	}
	return token, true
}

// Validate reports whether v parses as a version LessThan accepts.
func Validate(v string) error {
	trimmed := strings.TrimSpace(v)
	if _, err := semver.NewVersion(trimmed); err != nil {
		return fmt.Errorf(messages.VersionsInvalidFmt, trimmed, err)
	}
	return nil
}
