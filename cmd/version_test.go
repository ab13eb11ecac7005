package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tia.dev/pkg/tia/internal/adapter"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "tia "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "go "), lines[1])
	assert.Equal(t, fmt.Sprintf("graph snapshot format %d", adapter.SnapshotVersion), lines[2])
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printVersion(&out, buildVersion{Tia: "v0.3.1", Go: "go1.25.1"}))
	assert.Equal(t, "tia v0.3.1\ngo go1.25.1\ngraph snapshot format 1\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestPrintVersion_WriteError(t *testing.T) {
	require.Error(t, printVersion(failingWriter{}, buildVersion{Tia: unknownVersion, Go: "go1.25.1"}))
}

func TestReadBuildVersion(t *testing.T) {
	version := readBuildVersion()

	assert.NotEmpty(t, version.Tia)
	assert.True(t, strings.HasPrefix(version.Go, "go"), version.Go)
}
