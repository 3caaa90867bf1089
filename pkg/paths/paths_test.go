package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Faith", "faith"},
		{"Gym Motivation", "gym_motivation"},
		{"  Self-Discipline  ", "self_discipline"},
		{"Already_slugged", "already_slugged"},
		{"Many   spaces - and__marks", "many_spaces_and_marks"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestPackPaths(t *testing.T) {
	assert.Equal(t, "bible/faith", PackKey("Bible", "Faith"))
	assert.Equal(t, "motivation/gym_motivation/pack_config.json", PackRelativePath("Motivation", "Gym Motivation"))
	assert.Equal(t,
		filepath.Join("content_packs", "bible", "faith", "pack_config.json"),
		PackConfigPath("content_packs", "bible/faith/pack_config.json"))
}

func TestResolve(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "project")
	abs := filepath.Join(string(filepath.Separator), "media", "videos")

	assert.Equal(t, filepath.Join(base, "library", "video"), Resolve(base, "library/video"))
	assert.Equal(t, abs, Resolve(base, abs))
	assert.Equal(t, base, Resolve(base, ""))
	assert.Equal(t, "relative", Resolve("", "relative"))
}
