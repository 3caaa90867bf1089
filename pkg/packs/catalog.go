package packs

import (
	"github.com/arthur-debert/packsmith/pkg/paths"
	"github.com/arthur-debert/packsmith/pkg/types"
)

const (
	videoSpiritual = "library/video/spiritual"
	videoNature    = "library/video/nature"
	videoGym       = "library/video/gym"
	videoLuxury    = "library/video/luxury"
	videoUrban     = "library/video/urban"
	videoAbstract  = "library/video/abstract"
	videoGeneric   = "library/video/generic"

	audioCalm      = "library/audio/calm"
	audioUplifting = "library/audio/uplifting"
	audioGym       = "library/audio/gym"
	audioLuxury    = "library/audio/luxury"
	audioDramatic  = "library/audio/dramatic"
	audioGeneric   = "library/audio/generic"
)

// catalog is the fixed set of packs the provisioner writes, in write order
var catalog = []types.PackConfig{
	{
		PackName:    "Faith",
		Category:    "Bible",
		Subcategory: "Faith",
		Description: "Bible verses about faith, trust and belief in God",
		Tags:        []string{"faith", "trust", "belief", "bible", "scripture"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoSpiritual, videoNature},
			AudioFolders: []string{audioCalm, audioUplifting},
		},
	},
	{
		PackName:    "Hope",
		Category:    "Bible",
		Subcategory: "Hope",
		Description: "Bible verses about hope and God's promises",
		Tags:        []string{"hope", "promise", "future", "bible", "scripture"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoSpiritual, videoNature},
			AudioFolders: []string{audioUplifting, audioCalm},
		},
	},
	{
		PackName:    "Love",
		Category:    "Bible",
		Subcategory: "Love",
		Description: "Bible verses about love, kindness and compassion",
		Tags:        []string{"love", "kindness", "compassion", "bible", "scripture"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoNature, videoSpiritual},
			AudioFolders: []string{audioCalm},
		},
	},
	{
		PackName:    "Strength",
		Category:    "Bible",
		Subcategory: "Strength",
		Description: "Bible verses about strength and courage in hard times",
		Tags:        []string{"strength", "courage", "endurance", "bible", "scripture"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoSpiritual, videoNature},
			AudioFolders: []string{audioDramatic, audioUplifting},
		},
	},
	{
		PackName:    "Peace",
		Category:    "Bible",
		Subcategory: "Peace",
		Description: "Bible verses about peace, rest and calm",
		Tags:        []string{"peace", "rest", "calm", "bible", "scripture"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoNature},
			AudioFolders: []string{audioCalm},
		},
	},
	{
		PackName:    "Wisdom",
		Category:    "Bible",
		Subcategory: "Wisdom",
		Description: "Proverbs and verses about wisdom and understanding",
		Tags:        []string{"wisdom", "proverbs", "understanding", "bible", "scripture"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoSpiritual, videoNature},
			AudioFolders: []string{audioCalm, audioGeneric},
		},
	},
	{
		PackName:    "Gym Motivation",
		Category:    "Motivation",
		Subcategory: "Gym Motivation",
		Description: "Hard hitting quotes for training and fitness",
		Tags:        []string{"gym", "fitness", "workout", "training", "motivation"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoGym},
			AudioFolders: []string{audioGym, audioDramatic},
		},
	},
	{
		PackName:    "Success",
		Category:    "Motivation",
		Subcategory: "Success",
		Description: "Quotes about ambition, money and success",
		Tags:        []string{"success", "ambition", "wealth", "hustle", "motivation"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoLuxury, videoUrban},
			AudioFolders: []string{audioLuxury, audioDramatic},
		},
	},
	{
		PackName:    "Discipline",
		Category:    "Motivation",
		Subcategory: "Discipline",
		Description: "Quotes about discipline, habits and consistency",
		Tags:        []string{"discipline", "habits", "consistency", "focus", "motivation"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoGym, videoUrban},
			AudioFolders: []string{audioDramatic, audioGym},
		},
	},
	{
		PackName:    "Resilience",
		Category:    "Stoicism",
		Subcategory: "Resilience",
		Description: "Stoic thoughts on adversity and endurance",
		Tags:        []string{"stoicism", "resilience", "adversity", "philosophy", "mindset"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoNature, videoAbstract},
			AudioFolders: []string{audioDramatic, audioCalm},
		},
	},
	{
		PackName:    "Mindset",
		Category:    "Stoicism",
		Subcategory: "Mindset",
		Description: "Stoic thoughts on perception, control and calm",
		Tags:        []string{"stoicism", "mindset", "control", "philosophy", "calm"},
		Content:     types.ContentSettings{AutoDetect: true},
		Resources: types.Resources{
			VideoFolders: []string{videoAbstract, videoGeneric},
			AudioFolders: []string{audioCalm, audioGeneric},
		},
	},
}

// Catalog returns the embedded pack list in write order.
// Each call returns fresh copies; the table itself is never exposed.
func Catalog() []types.CatalogEntry {
	entries := make([]types.CatalogEntry, 0, len(catalog))
	for _, cfg := range catalog {
		entries = append(entries, types.CatalogEntry{
			Key:          paths.PackKey(cfg.Category, cfg.Subcategory),
			RelativePath: paths.PackRelativePath(cfg.Category, cfg.Subcategory),
			Config:       cfg.Clone(),
		})
	}
	return entries
}

// Lookup returns the catalog entry for a pack key such as "bible/faith"
func Lookup(key string) (types.CatalogEntry, bool) {
	for _, entry := range Catalog() {
		if entry.Key == key {
			return entry, true
		}
	}
	return types.CatalogEntry{}, false
}
