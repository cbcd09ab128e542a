package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"manvet/pkg/errors"
	"manvet/pkg/fetch"
	"manvet/pkg/ips"
	"manvet/pkg/logging"
	"manvet/pkg/pkgrepo"
	"manvet/pkg/registry"
	"manvet/pkg/style"
)

// Link targets in the corpus occasionally point back into another man
// directory with one of these exact prefixes. Anything else with a slash
// in it is treated as malformed.
var linkTargetPrefixes = []string{
	"../man1/",
	"../../../has/man/man1has/",
	"./",
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: MsgBuildShort,
		Long:  MsgBuildLong,
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}

	addDatabaseFlag(cmd)
	cmd.Flags().String("repo", "", "Package repository to ingest")
	cmd.Flags().String("pattern", "", "Restrict ingestion to packages matching this pattern")
	cmd.Flags().Int("workers", 0, "Number of concurrent content-listing workers")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("build")
	renderer := style.NewRenderer()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Repo.Path == "" {
		return errors.New(errors.ErrInvalidInput, "no repository configured; set repo.path or pass --repo")
	}

	client := pkgrepo.New()

	list, err := client.List(cfg.Repo.Path, cfg.Repo.Pattern)
	if err != nil {
		return err
	}
	logger.Info().Int("packages", len(list)).Str("repo", cfg.Repo.Path).Msg("listed repository")

	fetcher := fetch.New(client)
	for _, pkg := range list {
		fetcher.Append(fetch.WorkItem{Repo: cfg.Repo.Path, Pkg: pkg})
	}

	db := registry.New()

	var firstErr error
	for batch := range fetcher.Run(cfg.Fetch.Workers) {
		if firstErr != nil {
			// drain remaining batches so the workers can finish
			continue
		}
		for _, res := range batch {
			logger.Debug().Str("pkg", res.Pkg.Name).Msg("ingesting package contents")
			if err := ingest(db, res); err != nil {
				firstErr = err
				break
			}
		}
	}
	if firstErr == nil {
		firstErr = fetcher.Err()
	}
	if firstErr != nil {
		return firstErr
	}

	if err := db.PersistFile(cfg.Database.Path); err != nil {
		return err
	}

	renderer.Line("wrote %d records to %s", db.Len(), cfg.Database.Path)
	return nil
}

// ingest records every manual page file and link one package delivers.
func ingest(db *registry.Registry, res fetch.Result) error {
	for _, a := range res.Contents {
		switch a := a.(type) {
		case ips.FileAction:
			if strings.HasPrefix(a.Path, "usr/man") {
				return errors.Newf(errors.ErrMalformedManifestPath, "weird? %+v", a)
			}
			if !strings.HasPrefix(a.Path, "usr/share/man/") {
				continue
			}

			sect, page, err := ips.PathToMan(a.Path)
			if err != nil {
				return err
			}
			if err := db.Insert(false, sect, page, res.Pkg.Name); err != nil {
				return err
			}

		case ips.LinkAction:
			if a.Path != "usr/man" && strings.HasPrefix(a.Path, "usr/man") {
				return errors.Newf(errors.ErrMalformedManifestPath, "weird? %+v", a)
			}
			if !strings.HasPrefix(a.Path, "usr/share/man/") {
				continue
			}

			sect, page, err := ips.PathToMan(a.Path)
			if err != nil {
				return err
			}

			t := a.Target
			for _, prefix := range linkTargetPrefixes {
				t = strings.TrimPrefix(t, prefix)
			}
			if strings.Contains(t, "/") {
				return errors.Newf(errors.ErrMalformedManifestPath, "target weird %q", a.Target)
			}

			if err := db.Insert(true, sect, page, res.Pkg.Name); err != nil {
				return err
			}
		}
	}

	return nil
}
