package packsmith

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Provision content packs and launch the video generator"
	MsgProvisionShort  = "Write the built-in pack configs"
	MsgLaunchShort     = "Check for Python and start the GUI application"
	MsgListShort       = "List content packs on disk"
	MsgListLong        = "List displays every pack found under the content root with its quote, video and audio counts."
	MsgConfigShort     = "Show the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "packsmith %s (commit %s, built %s)\n"

	// Error messages
	MsgErrLoadConfig     = "failed to load configuration: %w"
	MsgErrProvisionPacks = "failed to provision packs: %w"
	MsgErrListPacks      = "failed to list packs: %w"
	MsgErrInvalidFormat  = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagConfig      = "Path to a packsmith.toml configuration file"
	MsgFlagContentRoot = "Content pack directory (overrides content.root)"
	MsgFlagFormat      = "Output format (auto, term, text, json)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/provision-long.txt
	msgProvisionLongRaw string
	MsgProvisionLong    = strings.TrimSpace(msgProvisionLongRaw)

	//go:embed msgs/provision-example.txt
	msgProvisionExampleRaw string
	MsgProvisionExample    = strings.TrimRight(msgProvisionExampleRaw, "\n")

	//go:embed msgs/launch-long.txt
	msgLaunchLongRaw string
	MsgLaunchLong    = strings.TrimSpace(msgLaunchLongRaw)

	//go:embed msgs/launch-example.txt
	msgLaunchExampleRaw string
	MsgLaunchExample    = strings.TrimRight(msgLaunchExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
