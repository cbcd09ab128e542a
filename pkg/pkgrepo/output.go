package pkgrepo

import (
	"errors"
	"os/exec"
	"strings"
)

// outputInfo renders the most useful diagnostic available from a failed
// command: how it exited, then whatever it printed. Some tools emit their
// failure message on stdout rather than stderr, so stdout is the fallback.
func outputInfo(err error, stdout, stderr []byte) string {
	var out string

	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ProcessState != nil {
		// "exit status 1", "signal: killed", ...
		out = ee.ProcessState.String()
	} else {
		out = err.Error()
	}

	extra := strings.TrimSpace(string(stderr))
	if extra == "" {
		extra = strings.TrimSpace(string(stdout))
	}

	if extra != "" {
		if out != "" {
			out += ": "
		}
		out += extra
	}

	return out
}
