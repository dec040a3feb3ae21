// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

/* ------------ logging helpers (stderr) ------------ */

func Infof(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", a...)
}

func Warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", a...)
}

/* ------------ storage paths ------------ */

// ParsedPath is a decomposed gs:// URI.
type ParsedPath struct {
	Bucket string
	Key    string
}

// IsStorageURI reports whether p lives in the object-storage namespace.
func IsStorageURI(p string) bool {
	return strings.HasPrefix(p, StorageURIPrefix)
}

// ParseStoragePath splits gs://bucket/some/key into bucket and key.
func ParseStoragePath(p string) (*ParsedPath, error) {
	if !IsStorageURI(p) {
		return nil, fmt.Errorf("not a storage URI: %s", p)
	}
	rest := strings.TrimPrefix(p, StorageURIPrefix)
	if rest == "" {
		return nil, fmt.Errorf("missing bucket in storage URI: %s", p)
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return nil, fmt.Errorf("missing bucket in storage URI: %s", p)
	}
	return &ParsedPath{Bucket: bucket, Key: key}, nil
}

// IsLocalDir reports whether p is an existing local directory.
func IsLocalDir(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

// IsLocalFile reports whether p is an existing local regular file.
func IsLocalFile(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

/* ------------ output formatting ------------ */

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	default:
		return "short"
	}
}

// FormatOutput renders v as json or yaml; any other format falls back to
// fmt's default representation.
func FormatOutput(v any, format string) (string, error) {
	switch TranslateFormat(format) {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
