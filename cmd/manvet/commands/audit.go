package commands

import (
	"github.com/spf13/cobra"

	"manvet/pkg/errors"
	"manvet/pkg/mansrc"
	"manvet/pkg/registry"
	"manvet/pkg/style"
	"manvet/pkg/xref"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: MsgAuditShort,
		Long:  MsgAuditLong,
		Args:  cobra.NoArgs,
		RunE:  runAudit,
	}

	addDatabaseFlag(cmd)
	cmd.Flags().String("man-root", "", "Manual page source tree (default from configuration)")

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := registry.LoadFile(cfg.Database.Path)
	if err != nil {
		return err
	}

	src := mansrc.Source{Root: cfg.Man.Root}
	renderer := style.NewRenderer()

	for _, r := range db.Records() {
		if r.IsAlias {
			continue
		}

		content, err := src.Read(r.Section, r.Page)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrFileNotFound) && mansrc.IsGenerated(r.Section, r.Page) {
				continue
			}
			return err
		}

		if mansrc.IsMdoc(content) {
			renderer.Muted("mdoc %s(%s)", r.Page, r.Section)
			continue
		}

		renderer.Line("roff %s(%s)", r.Page, r.Section)

		res, err := xref.Audit(db, content)
		if err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "file %s", src.PagePath(r.Section, r.Page))
		}

		for _, x := range res.Missing {
			renderer.Bad("MISSING %s(%s)?", x.Page, x.Section)
		}
		for _, x := range res.Resolved {
			renderer.Line("    -> %s(%s)", x.Page, x.Section)
		}
	}

	return nil
}
