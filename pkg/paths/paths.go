// Package paths provides centralized path handling for packsmith.
// Every content pack lives at <content root>/<category>/<subcategory>, with
// both segments slugged so the layout is stable across platforms.
package paths

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/packsmith/pkg/types"
)

var separatorRun = regexp.MustCompile(`[\s_-]+`)

// Slug lower-cases a name and collapses spaces, hyphens and underscores to
// a single underscore ("Gym Motivation" -> "gym_motivation")
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = separatorRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// PackKey returns the slash separated key identifying a pack ("bible/faith")
func PackKey(category, subcategory string) string {
	return path.Join(Slug(category), Slug(subcategory))
}

// PackRelativePath returns the pack config path relative to the content root
// in slash form ("bible/faith/pack_config.json")
func PackRelativePath(category, subcategory string) string {
	return path.Join(PackKey(category, subcategory), types.PackConfigFile)
}

// PackConfigPath returns the platform path of a pack config under root
func PackConfigPath(root, relativePath string) string {
	return filepath.Join(root, filepath.FromSlash(relativePath))
}

// Resolve makes p absolute against base unless it already is
func Resolve(base, p string) string {
	if p == "" {
		return base
	}
	if filepath.IsAbs(p) || base == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
