package ips

import (
	"strings"

	"manvet/pkg/errors"
)

// Action is one manifest entry describing a filesystem object a package
// installs. Only file and link actions carry structure this tool cares
// about; everything else is preserved as an OtherAction.
type Action interface {
	// Kind returns the manifest action name (file, link, dir, ...)
	Kind() string
}

// FileAction is a delivered regular file.
type FileAction struct {
	Path string
}

func (a FileAction) Kind() string { return "file" }

// LinkAction is a delivered symbolic link.
type LinkAction struct {
	Path   string
	Target string
}

func (a LinkAction) Kind() string { return "link" }

// OtherAction is any manifest action this tool does not interpret.
type OtherAction struct {
	Name string
}

func (a OtherAction) Kind() string { return a.Name }

// ParseManifest parses the text of a package manifest (pkgrepo contents -m
// output) into its action list. Comment lines and blank lines are skipped;
// a trailing backslash continues an action onto the next line.
func ParseManifest(s string) ([]Action, error) {
	var actions []Action
	var pending string

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")

		if pending != "" {
			line = pending + strings.TrimLeft(line, " \t")
			pending = ""
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasSuffix(trimmed, "\\") {
			pending = strings.TrimSuffix(trimmed, "\\")
			continue
		}

		a, err := parseAction(trimmed)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}

	if pending != "" {
		return nil, errors.Newf(errors.ErrMalformedManifest, "manifest ends inside a continued action: %q", pending)
	}

	return actions, nil
}

func parseAction(line string) (Action, error) {
	tokens, err := splitTokens(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, errors.New(errors.ErrMalformedManifest, "empty action")
	}

	kind := tokens[0]
	attrs := make(map[string]string)
	for _, t := range tokens[1:] {
		i := strings.Index(t, "=")
		if i < 0 {
			// file actions carry a bare payload token before the attributes
			continue
		}
		// first occurrence wins; repeated attributes do not apply to
		// the path/target keys this tool reads
		key := t[:i]
		if _, ok := attrs[key]; !ok {
			attrs[key] = t[i+1:]
		}
	}

	switch kind {
	case "file":
		path, ok := attrs["path"]
		if !ok {
			return nil, errors.Newf(errors.ErrMalformedManifest, "file action without path: %q", line)
		}
		return FileAction{Path: path}, nil
	case "link":
		path, ok := attrs["path"]
		if !ok {
			return nil, errors.Newf(errors.ErrMalformedManifest, "link action without path: %q", line)
		}
		target, ok := attrs["target"]
		if !ok {
			return nil, errors.Newf(errors.ErrMalformedManifest, "link action without target: %q", line)
		}
		return LinkAction{Path: path, Target: target}, nil
	default:
		return OtherAction{Name: kind}, nil
	}
}

// splitTokens splits an action line on whitespace, honouring double-quoted
// attribute values.
func splitTokens(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case (c == ' ' || c == '\t') && !inQuote:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if inQuote {
		return nil, errors.Newf(errors.ErrMalformedManifest, "unterminated quote in action: %q", line)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}

	return tokens, nil
}
