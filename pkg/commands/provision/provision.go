package provision

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/arthur-debert/packsmith/pkg/packs"
	"github.com/arthur-debert/packsmith/pkg/paths"
	"github.com/arthur-debert/packsmith/pkg/types"
)

// ProvisionOptions defines the options for the Provision command.
type ProvisionOptions struct {
	// ContentRoot is the directory pack configs are written under.
	ContentRoot string
	// PackKeys limits provisioning to these packs ("bible/faith"). Empty means all.
	PackKeys []string
	// DryRun computes the target paths without writing anything.
	DryRun bool
	// FileSystem receives the writes.
	FileSystem types.FS
}

// Provision writes every selected catalog entry to
// <ContentRoot>/<category>/<subcategory>/pack_config.json, overwriting
// existing files. The first failure aborts the remaining writes; files
// already written are left in place.
func Provision(opts ProvisionOptions) (*types.ProvisionResult, error) {
	logger := logging.GetLogger("commands.provision")
	defer logging.LogOperationStart(logger, "provision")()

	result := &types.ProvisionResult{
		ContentRoot:  opts.ContentRoot,
		FilesWritten: []string{},
		DryRun:       opts.DryRun,
	}

	if opts.FileSystem == nil {
		return result, errors.New(errors.ErrInvalidInput, "provision requires a filesystem")
	}

	entries, err := selectEntries(opts.PackKeys)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		target := paths.PackConfigPath(opts.ContentRoot, entry.RelativePath)

		if opts.DryRun {
			logger.Info().Str("path", target).Msg("Dry run, would write pack config")
			result.FilesWritten = append(result.FilesWritten, target)
			continue
		}

		if err := writeEntry(opts.FileSystem, target, entry.Config); err != nil {
			logger.Error().Err(err).Str("pack", entry.Key).Msg("Provisioning aborted")
			return result, err
		}

		logger.Info().Str("pack", entry.Key).Str("path", target).Msg("Written pack config")
		result.FilesWritten = append(result.FilesWritten, target)
	}

	return result, nil
}

// selectEntries resolves pack keys against the catalog before anything is
// written, so an unknown key never leaves a partial run behind
func selectEntries(keys []string) ([]types.CatalogEntry, error) {
	if len(keys) == 0 {
		return packs.Catalog(), nil
	}

	entries := make([]types.CatalogEntry, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		entry, ok := packs.Lookup(normalizeKey(key))
		if !ok {
			return nil, errors.Newf(errors.ErrPackNotFound, "unknown pack %q", key).
				WithDetail("pack", key)
		}
		if seen[entry.Key] {
			continue
		}
		seen[entry.Key] = true
		entries = append(entries, entry)
	}
	return entries, nil
}

// normalizeKey accepts "Bible/Gym Motivation" as well as "bible/gym_motivation"
func normalizeKey(key string) string {
	category, subcategory, ok := strings.Cut(filepath.ToSlash(key), "/")
	if !ok {
		return key
	}
	return paths.PackKey(category, subcategory)
}

func writeEntry(fsys types.FS, target string, cfg types.PackConfig) error {
	data, err := packs.Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}

	if err := fsys.WriteFile(target, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("path", target)
	}
	return nil
}
