// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"strings"

	"github.com/google/uuid"
)

func UUIDv4NoDash() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// KeyFileName builds a unique name for a service-account key file.
func KeyFileName() string {
	return "gcp-sa-" + UUIDv4NoDash() + ".json"
}
