// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package secret

type GetRequest struct {
	Project  string
	SecretID string
	// Version selects a specific secret version; empty means "latest".
	Version string
}
