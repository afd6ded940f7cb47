package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakmich/lutq"
)

func TestRunRandom(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--sizes", "100,500", "--trials", "3", "--variants", "reference,fused", "--seed", "5", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "group,name,size,trials,ns_per_op,mb_per_s,agreement,max_delta", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "quantize_15,reference_small,100,3,"))
	assert.True(t, strings.HasPrefix(lines[4], "quantize_15,fused_500,500,3,"))
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luts.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,15,7.5\n1,1,1\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--path", path, "--trials", "2", "--variants", "fused", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "quantize_15,fused_row0,3,2,"))
	assert.True(t, strings.HasSuffix(lines[2], ",1.0000,0"))
}

func TestRunRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luts.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,NaN\n"), 0644))

	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--path", path, "--log-level", "error"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, lutq.ErrNonFinite)
}

func TestRunUnknownVariant(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--variants", "int8", "--log-level", "error"})
	assert.ErrorIs(t, cmd.Execute(), lutq.ErrUnknownQuantizer)
}

func TestRunBadLogLevel(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "chatty"})
	assert.Error(t, cmd.Execute())
}

func TestRunEnvOverridesDefaults(t *testing.T) {
	t.Setenv("LUTQ_TRIALS", "4")
	t.Setenv("LUTQ_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--sizes", "100", "--variants", "fused"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "quantize_15,fused_small,100,4,"))
}
