package packsmith

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/packsmith/internal/version"
	"github.com/arthur-debert/packsmith/pkg/commands"
	"github.com/arthur-debert/packsmith/pkg/config"
	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/executor"
	"github.com/arthur-debert/packsmith/pkg/filesystem"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/arthur-debert/packsmith/pkg/packs"
	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/arthur-debert/packsmith/pkg/ui"
	"github.com/arthur-debert/packsmith/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Dependencies are the outside world the commands talk to
type Dependencies struct {
	FileSystem types.FS
	Executor   types.Executor

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinIsTerminal decides whether a failed launch pauses for Enter
	StdinIsTerminal func() bool
	// UserConfigDir overrides the XDG config location
	UserConfigDir string
}

// DefaultDependencies wires the real filesystem, processes and console
func DefaultDependencies() Dependencies {
	return Dependencies{
		FileSystem:      filesystem.NewOS(),
		Executor:        executor.New(),
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		StdinIsTerminal: func() bool { return isTerminal(os.Stdin) },
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDependencies(DefaultDependencies())
}

// NewRootCmdWithDependencies creates the root command against deps
func NewRootCmdWithDependencies(deps Dependencies) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity   int
		configFile  string
		contentRoot string
		cfg         *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     "packsmith",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("content-root") {
				overrides["content.root"] = contentRoot
			}

			loaded, err := config.Load(config.LoadOptions{
				ConfigFile:    configFile,
				UserConfigDir: deps.UserConfigDir,
				Overrides:     overrides,
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetIn(deps.Stdin)
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&contentRoot, "content-root", "", MsgFlagContentRoot)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	getConfig := func() *config.Config { return cfg }

	// Add all commands
	rootCmd.AddCommand(newProvisionCmd(deps, getConfig))
	rootCmd.AddCommand(newLaunchCmd(deps, getConfig))
	rootCmd.AddCommand(newListCmd(deps, getConfig))
	rootCmd.AddCommand(newConfigCmd(getConfig))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// packKeysCompletion provides shell completion for catalog pack keys
func packKeysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	used := make(map[string]bool, len(args))
	for _, arg := range args {
		used[arg] = true
	}

	var keys []string
	for _, entry := range packs.Catalog() {
		if !used[entry.Key] {
			keys = append(keys, entry.Key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func newProvisionCmd(deps Dependencies, cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:               "provision [packs...]",
		Short:             MsgProvisionShort,
		Long:              MsgProvisionLong,
		Example:           MsgProvisionExample,
		GroupID:           "core",
		ValidArgsFunction: packKeysCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get dry-run flag value (it's a persistent flag)
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			contentRoot := cfg().Content.Root

			log.Info().
				Str("content_root", contentRoot).
				Bool("dry_run", dryRun).
				Msg("Provisioning pack configs")

			result, err := commands.Provision(commands.ProvisionOptions{
				ContentRoot: contentRoot,
				PackKeys:    args,
				DryRun:      dryRun,
				FileSystem:  deps.FileSystem,
			})
			if err != nil {
				return fmt.Errorf(MsgErrProvisionPacks, err)
			}

			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newLaunchCmd(deps Dependencies, cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "launch [-- app args...]",
		Short:   MsgLaunchShort,
		Long:    MsgLaunchLong,
		Example: MsgLaunchExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			launcher := cfg().Launcher
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = commands.Launch(cmd.Context(), commands.LaunchOptions{
				Interpreters: launcher.Interpreters,
				VersionFlag:  launcher.VersionFlag,
				EntryPoint:   launcher.EntryPoint,
				Args:         args,
				WorkingDir:   launcher.WorkingDir,
				DryRun:       dryRun,
				Executor:     deps.Executor,
				Reporter:     renderer,
				Stdin:        cmd.InOrStdin(),
				Stdout:       cmd.OutOrStdout(),
				Stderr:       cmd.ErrOrStderr(),
			})
			if err != nil && launcher.PauseOnError && deps.StdinIsTerminal != nil && deps.StdinIsTerminal() {
				if perr := confirmations.Pause(cmd.InOrStdin(), cmd.ErrOrStderr(), ""); perr != nil {
					log.Warn().Err(perr).Msg("Pause prompt failed")
				}
			}
			return err
		},
	}
}

func newListCmd(deps Dependencies, cfg func() *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := ui.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrInvalidFormat, err)
			}

			result, err := commands.ListPacks(commands.ListPacksOptions{
				ContentRoot: cfg().Content.Root,
				FileSystem:  deps.FileSystem,
			})
			if err != nil {
				return fmt.Errorf(MsgErrListPacks, err)
			}

			renderer, err := ui.NewRenderer(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	return cmd
}

func newConfigCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := commands.ShowConfig(commands.ShowConfigOptions{Config: cfg()})
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
