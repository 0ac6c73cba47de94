package embedjs

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/webfig/embedjs/internal/version"
	"github.com/webfig/embedjs/pkg/bundle"
	"github.com/webfig/embedjs/pkg/filesystem"
	"github.com/webfig/embedjs/pkg/logging"
	"github.com/webfig/embedjs/pkg/registry"
	"github.com/webfig/embedjs/pkg/style"
)

// Default locations, relative to the directory embedjs is invoked from.
const (
	DefaultWebBackendDir = "."
	DefaultLicenseDir    = "LICENSE"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity    int
		dryRun       bool
		packagesFile string
		bundlePath   string
	)

	rootCmd := &cobra.Command{
		Use:     "embedjs [web-backend] [license-dir]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			webBackend := DefaultWebBackendDir
			licenseDir := DefaultLicenseDir
			if len(args) > 0 {
				webBackend = args[0]
			}
			if len(args) > 1 {
				licenseDir = args[1]
			}

			reg, err := loadRegistry(packagesFile)
			if err != nil {
				return err
			}

			log.Info().
				Str("web_backend", webBackend).
				Str("license_dir", licenseDir).
				Bool("dry_run", dryRun).
				Int("packages", len(reg)).
				Msg("Building bundle")

			builder := bundle.New(bundle.Options{
				Registry:   reg,
				BundlePath: bundlePath,
				DryRun:     dryRun,
			})

			result, err := builder.Build(webBackend, licenseDir)
			if err != nil {
				return err
			}

			for _, p := range result.Packages {
				fmt.Fprintf(cmd.OutOrStdout(), MsgEmbeddingFormat, p.SourcePath, p.VarName)
			}
			if result.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&packagesFile, "packages", "", MsgFlagPackages)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&bundlePath, "bundle", bundle.DefaultBundlePath, MsgFlagBundle)

	rootCmd.AddCommand(newListCmd(&packagesFile))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadRegistry returns the registry from the given TOML file, or the
// built-in registry when no file is specified.
func loadRegistry(packagesFile string) (registry.Registry, error) {
	if packagesFile == "" {
		return registry.Default(), nil
	}
	return registry.Load(filesystem.NewOS(), packagesFile)
}

func newListCmd(packagesFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(*packagesFile)
			if err != nil {
				return err
			}

			source := "built-in registry"
			if *packagesFile != "" {
				source = *packagesFile
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.TitleStyle.Render("Packages to embed"))
			fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render(source))
			fmt.Fprintln(cmd.OutOrStdout())

			data := pterm.TableData{{"Package", "Source", "License", "Variable"}}
			for _, pkg := range reg {
				data = append(data, []string{pkg.Name, pkg.Source, pkg.License, pkg.SafeName()})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "embedjs version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
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
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
