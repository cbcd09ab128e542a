package commands

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"manvet/pkg/errors"
	"manvet/pkg/style"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := toml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
			}

			renderer := style.NewRenderer()
			renderer.Line("%s", string(out))
			return nil
		},
	}
}
