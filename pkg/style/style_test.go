package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainRendererRoutesStreams(t *testing.T) {
	var out, errOut strings.Builder
	r := NewPlainRenderer(&out, &errOut)

	r.Line("roff %s(%s)", "ls", "1")
	r.Good("    -> %s(%s)", "cp", "1")
	r.Muted("mdoc %s(%s)", "cat", "1")
	r.Bad("MISSING %s(%s)?", "nope", "7D")
	r.Warn("sect %q is not in uppercase", "1m")

	assert.Equal(t, "roff ls(1)\n    -> cp(1)\nmdoc cat(1)\n", out.String())
	assert.Equal(t, "MISSING nope(7D)?\nsect \"1m\" is not in uppercase\n", errOut.String())
}

func TestPlainRendererEmitsNoEscapes(t *testing.T) {
	var out, errOut strings.Builder
	r := NewPlainRenderer(&out, &errOut)

	r.Bad("MISSING %s(%s)?", "nope", "7D")
	assert.NotContains(t, errOut.String(), "\x1b[")
}
