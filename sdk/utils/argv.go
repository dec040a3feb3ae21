// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"

	"github.com/google/shlex"
)

// InNotebookHost reports whether the process runs on a Colab runtime.
func InNotebookHost() bool {
	_, ok := os.LookupEnv(ColabHostEnvVar)
	return ok
}

// GetArgv returns the argument vector a flag parser should consume.
//
// Outside the notebook host it is always the real os.Args, whatever params
// says: scripts run unchanged when moved off the notebook. Inside the host a
// non-empty params is tokenized with shell quoting rules and prepended with a
// placeholder program name, so notebook cells can simulate a command line.
func GetArgv(params string) ([]string, error) {
	if !InNotebookHost() || params == "" {
		return os.Args, nil
	}

	tokens, err := shlex.Split(params)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize params: %w", err)
	}
	return append([]string{ArgvPlaceholder}, tokens...), nil
}
