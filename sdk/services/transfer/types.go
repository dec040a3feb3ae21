// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

// Mode selects the gsutil sub-command.
type Mode string

const (
	// ModeRsync synchronizes directory trees (the default).
	ModeRsync Mode = "rsync"
	// ModeCp copies files or trees.
	ModeCp Mode = "cp"
)

// Request describes one transfer invocation. At least one of Src/Dst must be
// a gs:// URI; the other side may be a local path.
type Request struct {
	Src string
	Dst string
	// Mode defaults to rsync. When Src turns out to be a single local file
	// the service silently downgrades rsync to cp for that invocation.
	Mode Mode

	// rsync-only flags
	Delete   bool // mirror deletions at the destination
	Checksum bool // compare by checksum instead of mtime/size

	// cp-only flag
	PreservePosix bool // keep POSIX attributes on the copied objects

	// DryRun prints the assembled command instead of executing it.
	DryRun bool
	// ExtraArgs are appended verbatim after the built-in flags, before the
	// src/dst positionals.
	ExtraArgs []string
}

// -------- in-process object transfer --------

type DownloadRequest struct {
	// Source is a gs:// URI; a trailing slash means a whole prefix.
	Source      string
	Destination string
	// Verbose lists each object and draws a progress bar.
	Verbose bool
	// Format renders the resulting listing on stdout as "json" or "yaml".
	// Empty prints nothing.
	Format string
}

type DownloadInfo struct {
	Filename string `json:"filename" yaml:"filename"`
	Size     int64  `json:"size"     yaml:"size"`
	Path     string `json:"path"     yaml:"path"`
}

type UploadRequest struct {
	// Input is a local file or directory.
	Input string
	// Destination is a gs:// URI (prefix for directories).
	Destination string
	// Verbose lists each object and draws a progress bar.
	Verbose bool
	// Format renders the resulting listing on stdout as "json" or "yaml".
	// Empty prints nothing.
	Format string
}
