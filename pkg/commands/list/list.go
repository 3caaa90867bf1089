package list

import (
	"path/filepath"

	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/arthur-debert/packsmith/pkg/packs"
	"github.com/arthur-debert/packsmith/pkg/types"
)

// ListPacksOptions defines the options for the ListPacks command.
type ListPacksOptions struct {
	// ContentRoot is the directory holding <category>/<pack> folders.
	ContentRoot string
	// ProjectDir anchors relative resource folders. Defaults to the parent of ContentRoot.
	ProjectDir string
	FileSystem types.FS
}

// ListPacks finds all content packs under the content root.
func ListPacks(opts ListPacksOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListPacks").Msg("Executing command")

	if opts.FileSystem == nil {
		return nil, errors.New(errors.ErrInvalidInput, "list requires a filesystem")
	}

	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = filepath.Dir(filepath.Clean(opts.ContentRoot))
	}

	summaries, err := packs.Discover(packs.DiscoverOptions{
		FileSystem:  opts.FileSystem,
		ContentRoot: opts.ContentRoot,
		ProjectDir:  projectDir,
	})
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{
		ContentRoot: opts.ContentRoot,
		Packs:       summaries,
	}
	if result.Packs == nil {
		result.Packs = []types.PackSummary{}
	}

	log.Info().Str("command", "ListPacks").Int("packCount", len(result.Packs)).Msg("Command finished")
	return result, nil
}
