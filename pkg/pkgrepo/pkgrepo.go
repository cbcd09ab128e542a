// Package pkgrepo invokes the external pkgrepo tool to list packages in a
// repository and to fetch per-package manifests. Failures carry whatever
// diagnostic text the tool produced.
package pkgrepo

import (
	"bytes"
	"encoding/json"
	"os/exec"

	"manvet/pkg/errors"
	"manvet/pkg/ips"
	"manvet/pkg/logging"
)

// DefaultBin is where pkgrepo lives on an installed system.
const DefaultBin = "/usr/bin/pkgrepo"

// Client shells out to pkgrepo. The zero value is not usable; call New.
type Client struct {
	bin string
}

// New returns a client using the default pkgrepo binary.
func New() *Client {
	return &Client{bin: DefaultBin}
}

// NewWithBin returns a client using an alternate binary, for tests.
func NewWithBin(bin string) *Client {
	return &Client{bin: bin}
}

type pkgRepoList struct {
	PkgFMRI string `json:"pkg.fmri"`
}

// List runs "pkgrepo list -F json" against the repository and returns the
// parsed package identities, in tool order. An empty pattern lists every
// package.
func (c *Client) List(repo, pattern string) ([]ips.Package, error) {
	logger := logging.GetLogger("pkgrepo")

	args := []string{"list", "-F", "json", "-s", repo}
	if pattern != "" {
		args = append(args, pattern)
	}

	stdout, err := c.run(args)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "pkgrepo list (%s)", repo)
	}

	var list []pkgRepoList
	if err := json.Unmarshal(stdout, &list); err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "pkgrepo list (%s): unparseable output", repo)
	}

	pkgs := make([]ips.Package, 0, len(list))
	for _, prl := range list {
		p, err := ips.ParseFMRI(prl.PkgFMRI)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}

	logger.Debug().Str("repo", repo).Int("packages", len(pkgs)).Msg("listed repository")
	return pkgs, nil
}

// Contents runs "pkgrepo contents -m" for one package and parses the
// manifest into its action list.
func (c *Client) Contents(repo string, pkg ips.Package) ([]ips.Action, error) {
	stdout, err := c.run([]string{"contents", "-m", "-s", repo, pkg.FMRI()})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "pkgrepo contents (%s, %s)", repo, pkg.Name)
	}

	return ips.ParseManifest(string(stdout))
}

// run executes pkgrepo with a cleared environment, returning stdout on
// success and a captured-diagnostic error on abnormal exit.
func (c *Client) run(args []string) ([]byte, error) {
	cmd := exec.Command(c.bin, args...)
	cmd.Env = []string{}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.New(errors.ErrExternalTool, outputInfo(err, stdout.Bytes(), stderr.Bytes()))
	}

	return stdout.Bytes(), nil
}
