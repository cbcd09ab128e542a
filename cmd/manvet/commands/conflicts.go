package commands

import (
	"github.com/spf13/cobra"

	"manvet/pkg/conflicts"
	"manvet/pkg/registry"
	"manvet/pkg/style"
)

func newConflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: MsgConflictsShort,
		Long:  MsgConflictsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := registry.LoadFile(cfg.Database.Path)
			if err != nil {
				return err
			}

			renderer := style.NewRenderer()
			for _, c := range conflicts.Report(db) {
				renderer.Line("%s", c)
			}
			return nil
		},
	}

	addDatabaseFlag(cmd)
	return cmd
}
