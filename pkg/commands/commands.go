// Package commands provides high-level command implementations for packsmith.
//
// Each command is implemented in its own subdirectory:
//   - provision/  - Provision command, writes the catalog of pack configs
//   - launch/     - Launch command, probes Python and runs the GUI app
//   - list/       - ListPacks command, summarises packs on disk
//   - showconfig/ - ShowConfig command, prints the effective configuration
//
// This file re-exports the command functions so the CLI depends on a single
// package.
package commands

import (
	"context"

	"github.com/arthur-debert/packsmith/pkg/commands/launch"
	"github.com/arthur-debert/packsmith/pkg/commands/list"
	"github.com/arthur-debert/packsmith/pkg/commands/provision"
	"github.com/arthur-debert/packsmith/pkg/commands/showconfig"
	"github.com/arthur-debert/packsmith/pkg/types"
)

// Provision writes the pack config catalog under a content root.
type ProvisionOptions = provision.ProvisionOptions

func Provision(opts ProvisionOptions) (*types.ProvisionResult, error) {
	return provision.Provision(opts)
}

// Launch probes for an interpreter and runs the GUI application.
type LaunchOptions = launch.LaunchOptions

func Launch(ctx context.Context, opts LaunchOptions) (*types.LaunchResult, error) {
	return launch.Launch(ctx, opts)
}

// ListPacks summarises the content packs found on disk.
type ListPacksOptions = list.ListPacksOptions

func ListPacks(opts ListPacksOptions) (*types.ListResult, error) {
	return list.ListPacks(opts)
}

// ShowConfig encodes the effective configuration as TOML.
type ShowConfigOptions = showconfig.ShowConfigOptions

func ShowConfig(opts ShowConfigOptions) (string, error) {
	return showconfig.ShowConfig(opts)
}
