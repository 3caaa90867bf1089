package types

// PackConfigFile is the file name every pack carries its metadata in
const PackConfigFile = "pack_config.json"

// PackConfig describes one content category/subcategory pairing.
// Field order is the serialized key order and must not change.
type PackConfig struct {
	PackName    string          `json:"pack_name"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Content     ContentSettings `json:"content"`
	Resources   Resources       `json:"resources"`
}

// ContentSettings holds content loading flags
type ContentSettings struct {
	AutoDetect bool `json:"auto_detect"`
}

// Resources lists the media folders a pack draws from
type Resources struct {
	VideoFolders []string `json:"video_folders"`
	AudioFolders []string `json:"audio_folders"`
}

// Clone returns a deep copy so callers cannot mutate shared catalog records
func (p PackConfig) Clone() PackConfig {
	out := p
	out.Tags = cloneStrings(p.Tags)
	out.Resources.VideoFolders = cloneStrings(p.Resources.VideoFolders)
	out.Resources.AudioFolders = cloneStrings(p.Resources.AudioFolders)
	return out
}

// DisplayName returns "Category → Subcategory"
func (p PackConfig) DisplayName() string {
	category := p.Category
	if category == "" {
		category = "Unknown"
	}
	subcategory := p.Subcategory
	if subcategory == "" {
		subcategory = "Unknown"
	}
	return category + " → " + subcategory
}

func cloneStrings(in []string) []string {
	// Empty slices stay non-nil so they encode as [] rather than null
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// CatalogEntry pairs a Pack Config with its path relative to the content root
type CatalogEntry struct {
	Key          string
	RelativePath string
	Config       PackConfig
}
