// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/services/transfer"
)

func writeTempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))
	return path
}

func TestBuildCommandRsyncDirectory(t *testing.T) {
	dir := t.TempDir()

	cmd, err := transfer.BuildCommand(transfer.Request{
		Src:  dir,
		Dst:  "gs://bucket/data",
		Mode: transfer.ModeRsync,
	}, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"gsutil", "-m", "rsync", "-r", dir, "gs://bucket/data"}, cmd)
}

func TestBuildCommandSingleFileDowngradesToCp(t *testing.T) {
	file := writeTempFile(t)

	cmd, err := transfer.BuildCommand(transfer.Request{
		Src:  file,
		Dst:  "gs://bucket/data.csv",
		Mode: transfer.ModeRsync,
	}, "")
	require.NoError(t, err)

	assert.Contains(t, cmd, "cp")
	assert.NotContains(t, cmd, "rsync")
	// single file: no recursion
	assert.NotContains(t, cmd, "-r")
}

func TestBuildCommandRsyncFlags(t *testing.T) {
	cmd, err := transfer.BuildCommand(transfer.Request{
		Src:      "gs://bucket/in/",
		Dst:      "gs://bucket/out/",
		Mode:     transfer.ModeRsync,
		Delete:   true,
		Checksum: true,
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, count(cmd, "-d"))
	assert.Equal(t, 1, count(cmd, "-c"))
}

func TestBuildCommandCpPreservePosix(t *testing.T) {
	file := writeTempFile(t)

	cmd, err := transfer.BuildCommand(transfer.Request{
		Src:           file,
		Dst:           "gs://bucket/data.csv",
		Mode:          transfer.ModeCp,
		PreservePosix: true,
	}, "")
	require.NoError(t, err)

	assert.Contains(t, cmd, "-p")
}

func TestBuildCommandExtraArgsPosition(t *testing.T) {
	dir := t.TempDir()

	cmd, err := transfer.BuildCommand(transfer.Request{
		Src:       dir,
		Dst:       "gs://bucket/data",
		Delete:    true,
		ExtraArgs: []string{"--foo"},
	}, "")
	require.NoError(t, err)

	fooIdx := index(cmd, "--foo")
	require.GreaterOrEqual(t, fooIdx, 0)
	assert.Greater(t, fooIdx, index(cmd, "-d"), "extra args come after built-in flags")
	assert.Equal(t, []string{dir, "gs://bucket/data"}, cmd[len(cmd)-2:], "src/dst close the command")
}

func TestBuildCommandDefaultsToRsync(t *testing.T) {
	cmd, err := transfer.BuildCommand(transfer.Request{
		Src: "gs://bucket/in",
		Dst: t.TempDir(),
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "rsync", cmd[2])
	assert.Contains(t, cmd, "-r", "rsync assumes directory semantics")
}

func TestBuildCommandCustomBin(t *testing.T) {
	cmd, err := transfer.BuildCommand(transfer.Request{
		Src: "gs://bucket/in/",
		Dst: ".",
	}, "/opt/gsutil")
	require.NoError(t, err)
	assert.Equal(t, "/opt/gsutil", cmd[0])
	assert.Equal(t, "-m", cmd[1])
}

func TestBuildCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		req  transfer.Request
	}{
		{"no storage URI", transfer.Request{Src: "./a", Dst: "./b"}},
		{"missing src", transfer.Request{Dst: "gs://bucket/x"}},
		{"missing dst", transfer.Request{Src: "gs://bucket/x"}},
		{"bad mode", transfer.Request{Src: "gs://bucket/x", Dst: ".", Mode: "mv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transfer.BuildCommand(tt.req, "")
			assert.Error(t, err)
		})
	}
}

func count(ss []string, want string) int {
	n := 0
	for _, s := range ss {
		if s == want {
			n++
		}
	}
	return n
}

func index(ss []string, want string) int {
	for i, s := range ss {
		if s == want {
			return i
		}
	}
	return -1
}
