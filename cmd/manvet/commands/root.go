package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"manvet/internal/version"
	"manvet/pkg/config"
	"manvet/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "manvet",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newConflictsCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// loadConfig resolves configuration and applies any flag overrides the
// command registered through addConfigFlags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("database"); f != nil && f.Changed {
		cfg.Database.Path = f.Value.String()
	}
	if f := cmd.Flags().Lookup("repo"); f != nil && f.Changed {
		cfg.Repo.Path = f.Value.String()
	}
	if f := cmd.Flags().Lookup("pattern"); f != nil && f.Changed {
		cfg.Repo.Pattern = f.Value.String()
	}
	if f := cmd.Flags().Lookup("man-root"); f != nil && f.Changed {
		cfg.Man.Root = f.Value.String()
	}
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		var w int
		if _, err := fmt.Sscanf(f.Value.String(), "%d", &w); err == nil {
			cfg.Fetch.Workers = w
		}
	}

	return cfg, nil
}

func addDatabaseFlag(cmd *cobra.Command) {
	cmd.Flags().String("database", "", "Registry file to use (default from configuration)")
}
