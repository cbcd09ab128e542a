package commands

import (
	"github.com/spf13/cobra"

	"manvet/pkg/registry"
	"manvet/pkg/relocate"
	"manvet/pkg/style"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: MsgSimulateShort,
		Long:  MsgSimulateLong,
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

			derived := relocate.Transform(db)

			renderer := style.NewRenderer()
			for _, o := range relocate.Simulate(db, derived) {
				renderer.Line("old page %s(%s) is obscured", o.Page, o.Section)
			}
			return nil
		},
	}

	addDatabaseFlag(cmd)
	return cmd
}
