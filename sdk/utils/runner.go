// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CommandContext is the spawn seam; tests replace it to fake subprocesses.
var CommandContext = exec.CommandContext

// RunResult holds the outcome of a finished subprocess.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOptions configures a single invocation. Zero value: inherit the parent
// environment, discard nothing, capture nothing.
type RunOptions struct {
	// Env entries are appended to the parent environment ("K=V").
	Env []string
	// WorkingDir, when set, is the child's cwd.
	WorkingDir string
	// Stream passes stdout/stderr through to the caller's terminal.
	Stream bool
	// Stdin, when set, is fed to the child.
	Stdin io.Reader
}

// RunCommand executes program+args synchronously. Output is captured in the
// result; with opts.Stream it is additionally passed through. A non-zero exit
// returns an error wrapping the captured stderr so callers can pass the
// diagnostic along, con il Result comunque popolato.
func RunCommand(ctx context.Context, program string, args []string, opts RunOptions) (*RunResult, error) {
	cmd := CommandContext(ctx, program, args...)

	if opts.WorkingDir != "" {
		cmd.Dir = opts.WorkingDir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if opts.Stream {
		cmd.Stdout = io.MultiWriter(os.Stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()

	result := &RunResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(result.Stdout)
		}
		if msg != "" {
			return result, fmt.Errorf("%s exited with code %d: %s", program, result.ExitCode, msg)
		}
		return result, fmt.Errorf("%s exited with code %d", program, result.ExitCode)
	default:
		result.ExitCode = -1
		return result, fmt.Errorf("failed to run %s: %w", program, err)
	}
}
