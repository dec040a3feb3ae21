// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

func TestRunCommandCapturesStdout(t *testing.T) {
	res, err := utils.RunCommand(context.Background(), "sh",
		[]string{"-c", "echo hello"}, utils.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello", strings.TrimSpace(res.Stdout))
}

func TestRunCommandNonZeroExit(t *testing.T) {
	res, err := utils.RunCommand(context.Background(), "sh",
		[]string{"-c", "echo boom >&2; exit 3"}, utils.RunOptions{})
	require.Error(t, err)

	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, err.Error(), "boom", "stderr rides along with the error")
}

func TestRunCommandExtraEnv(t *testing.T) {
	res, err := utils.RunCommand(context.Background(), "sh",
		[]string{"-c", "printf %s \"$EXTRA_VAR\""},
		utils.RunOptions{Env: []string{"EXTRA_VAR=42"}})
	require.NoError(t, err)

	assert.Equal(t, "42", res.Stdout)
}

func TestRunCommandMissingBinary(t *testing.T) {
	res, err := utils.RunCommand(context.Background(), "definitely-not-a-binary",
		nil, utils.RunOptions{})
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
}
