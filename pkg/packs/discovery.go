package packs

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/arthur-debert/packsmith/pkg/paths"
	"github.com/arthur-debert/packsmith/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// VideoExtensions are counted as pack videos
	VideoExtensions = []string{".mp4", ".mov", ".avi"}
	// AudioExtensions are counted as pack audio
	AudioExtensions = []string{".mp3", ".wav", ".m4a"}
)

const (
	packVideosDir = "videos"
	packAudioDir  = "audio"
)

// DiscoverOptions controls pack discovery
type DiscoverOptions struct {
	FileSystem  types.FS
	ContentRoot string
	// ProjectDir anchors relative resource folders
	ProjectDir string
}

// Discover scans <root>/<category>/<pack> directories and summarises every
// directory holding at least one JSON file. A missing root yields no packs.
func Discover(opts DiscoverOptions) ([]types.PackSummary, error) {
	logger := logging.GetLogger("packs.discovery")
	fsys := opts.FileSystem
	root := opts.ContentRoot

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("root", root).Msg("Content root does not exist, no packs")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access content root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "content root is not a directory").
			WithDetail("path", root)
	}

	categories, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read content root").
			WithDetail("path", root)
	}

	var summaries []types.PackSummary
	for _, category := range categories {
		if !category.IsDir() || strings.HasPrefix(category.Name(), ".") {
			continue
		}
		categoryPath := filepath.Join(root, category.Name())
		entries, err := fsys.ReadDir(categoryPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", categoryPath).Msg("Cannot read category, skipping")
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			summary, ok := summarize(opts, category.Name(), entry.Name())
			if ok {
				summaries = append(summaries, summary)
			}
		}
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Key < summaries[j].Key })

	logger.Info().Int("count", len(summaries)).Str("root", root).Msg("Discovered packs")
	return summaries, nil
}

func summarize(opts DiscoverOptions, categoryDir, packDir string) (types.PackSummary, bool) {
	logger := logging.GetLogger("packs.discovery")
	fsys := opts.FileSystem
	packPath := filepath.Join(opts.ContentRoot, categoryDir, packDir)

	entries, err := fsys.ReadDir(packPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", packPath).Msg("Cannot read pack, skipping")
		return types.PackSummary{}, false
	}

	var quoteFiles []string
	hasConfigFile := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		if entry.Name() == types.PackConfigFile {
			hasConfigFile = true
			continue
		}
		quoteFiles = append(quoteFiles, filepath.Join(packPath, entry.Name()))
	}
	if !hasConfigFile && len(quoteFiles) == 0 {
		return types.PackSummary{}, false
	}

	summary := types.PackSummary{
		Key:  path.Join(categoryDir, packDir),
		Path: packPath,
	}

	if hasConfigFile {
		cfg, err := loadConfig(fsys, filepath.Join(packPath, types.PackConfigFile))
		if err != nil {
			logger.Warn().Err(err).Str("pack", summary.Key).Msg("Invalid pack config, using folder names")
		} else {
			summary.Config = cfg
			summary.HasConfig = true
		}
	}
	if !summary.HasConfig {
		summary.Config = derivedConfig(categoryDir, packDir)
	}
	summary.DisplayName = summary.Config.DisplayName()

	for _, file := range quoteFiles {
		summary.Quotes += countQuotes(fsys, file)
	}

	summary.Videos = countMedia(fsys, opts.ProjectDir, summary.Config.Resources.VideoFolders,
		filepath.Join(packPath, packVideosDir), VideoExtensions)
	summary.Audio = countMedia(fsys, opts.ProjectDir, summary.Config.Resources.AudioFolders,
		filepath.Join(packPath, packAudioDir), AudioExtensions)

	logger.Debug().
		Str("pack", summary.Key).
		Int("quotes", summary.Quotes).
		Int("videos", summary.Videos).
		Int("audio", summary.Audio).
		Msg("Loaded pack")

	return summary, true
}

func loadConfig(fsys types.FS, configPath string) (types.PackConfig, error) {
	data, err := fsys.ReadFile(configPath)
	if err != nil {
		return types.PackConfig{}, errors.Wrap(err, errors.ErrFileAccess, "cannot read pack config").
			WithDetail("path", configPath)
	}
	return Unmarshal(data)
}

// derivedConfig builds pack info from folder names when no config exists
func derivedConfig(categoryDir, packDir string) types.PackConfig {
	title := cases.Title(language.English)
	name := title.String(strings.ReplaceAll(packDir, "_", " "))
	return types.PackConfig{
		PackName:    name,
		Category:    title.String(strings.ReplaceAll(categoryDir, "_", " ")),
		Subcategory: name,
		Tags:        []string{},
		Resources: types.Resources{
			VideoFolders: []string{},
			AudioFolders: []string{},
		},
	}
}

type quotesFile struct {
	Verses []json.RawMessage `json:"verses"`
}

func countQuotes(fsys types.FS, file string) int {
	logger := logging.GetLogger("packs.discovery")
	data, err := fsys.ReadFile(file)
	if err != nil {
		logger.Warn().Err(err).Str("file", file).Msg("Cannot read quotes file")
		return 0
	}
	var qf quotesFile
	if err := json.Unmarshal(data, &qf); err != nil {
		logger.Warn().Err(err).Str("file", file).Msg("Invalid JSON in quotes file")
		return 0
	}
	if len(qf.Verses) == 0 {
		logger.Debug().Str("file", file).Msg("No verses in quotes file")
	}
	return len(qf.Verses)
}

// countMedia counts matching files in the configured folders, or in the
// pack's own fallback folder when none are configured
func countMedia(fsys types.FS, projectDir string, folders []string, fallback string, exts []string) int {
	dirs := []string{fallback}
	if len(folders) > 0 {
		dirs = dirs[:0]
		for _, folder := range folders {
			dirs = append(dirs, paths.Resolve(projectDir, folder))
		}
	}

	total := 0
	for _, dir := range dirs {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && hasExtension(entry.Name(), exts) {
				total++
			}
		}
	}
	return total
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
