// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package auth

type ConnectRequest struct {
	// ProjectID, when set, becomes the active gcloud project. When empty the
	// service tries the configured project, then the metadata server; if both
	// are silent the project step is skipped.
	ProjectID string
	// SecretName is the host secret holding the service-account JSON text.
	// Empty means the conventional name.
	SecretName string
}

// Credentials is the explicit handle returned by Connect. Client
// constructors accept it directly, so SDK calls do not have to rely on the
// ambient environment variable (which is still set for gcloud and ADC).
type Credentials struct {
	// KeyFile is the path of the written service-account key. It stays on
	// disk for the rest of the process; deleting it is up to the caller, and
	// breaks ambient-credential discovery from that moment on.
	KeyFile string
	// ProjectID is the project that was activated, if any.
	ProjectID string
}
