// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

type AuthService struct {
	store     SecretStore
	meta      config.MetadataHTTP
	gcloudBin string

	// profile-level fallbacks, consulted when the request leaves the
	// corresponding field empty
	defaultProject string
	defaultSecret  string
}

func NewAuthService(ctx context.Context, conf config.Config) (*AuthService, error) {
	return NewAuthServiceWith(DefaultStore(), config.NewMetadataHTTP(nil), conf.Gcp), nil
}

// NewAuthServiceWith wires explicit collaborators (tests, custom stores).
func NewAuthServiceWith(store SecretStore, meta config.MetadataHTTP, conf config.GcpConfig) *AuthService {
	bin := conf.GcloudBin
	if bin == "" {
		bin = utils.DefaultBins[utils.GcloudBin]
	}
	return &AuthService{
		store:          store,
		meta:           meta,
		gcloudBin:      bin,
		defaultProject: conf.ProjectID,
		defaultSecret:  conf.SecretName,
	}
}

// Connect authenticates the runtime with a service-account key stored in the
// host secret store:
//  1. the JSON text is written to a 0600 temp file,
//  2. `gcloud auth activate-service-account` adopts it for gcloud/gsutil,
//  3. GOOGLE_APPLICATION_CREDENTIALS points every client library at it,
//  4. when a project is known, `gcloud config set project` selects it.
//
// The key file is deliberately never removed: ambient-credential discovery
// needs it for the rest of the session. Removal is the caller's call.
func (s *AuthService) Connect(ctx context.Context, req ConnectRequest) (*Credentials, error) {
	secretName := req.SecretName
	if secretName == "" {
		secretName = s.defaultSecret
	}
	if secretName == "" {
		secretName = utils.DefaultSecretName
	}

	keyText, err := s.store.Get(secretName)
	if err != nil {
		return nil, fmt.Errorf("cannot read secret '%s' (store the service account JSON content in the host secret store): %w", secretName, err)
	}
	if keyText == "" {
		return nil, fmt.Errorf("secret '%s' is empty", secretName)
	}

	// Validate JSON early, before anything touches disk.
	if !json.Valid([]byte(keyText)) {
		return nil, fmt.Errorf("secret '%s' does not contain valid JSON", secretName)
	}

	keyPath, err := writeKeyFile(keyText)
	if err != nil {
		return nil, err
	}

	if _, err := utils.RunCommand(ctx, s.gcloudBin,
		[]string{"auth", "activate-service-account", "--key-file", keyPath},
		utils.RunOptions{}); err != nil {
		return nil, fmt.Errorf("service account activation failed: %w", err)
	}

	if err := os.Setenv(utils.ADCEnvVar, keyPath); err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", utils.ADCEnvVar, err)
	}

	projectID := s.resolveProject(ctx, req.ProjectID)
	if projectID != "" {
		if _, err := utils.RunCommand(ctx, s.gcloudBin,
			[]string{"config", "set", "project", projectID},
			utils.RunOptions{}); err != nil {
			return nil, fmt.Errorf("failed to set active project '%s': %w", projectID, err)
		}
	}

	return &Credentials{KeyFile: keyPath, ProjectID: projectID}, nil
}

// resolveProject: explicit request > configured profile > metadata server >
// none. A missing metadata server only means the project step is skipped.
func (s *AuthService) resolveProject(ctx context.Context, requested string) string {
	if requested != "" {
		return requested
	}
	if s.defaultProject != "" {
		return s.defaultProject
	}
	if s.meta == nil {
		return ""
	}
	id, err := s.meta.ProjectID(ctx)
	if err != nil {
		return ""
	}
	return id
}

func writeKeyFile(keyText string) (string, error) {
	keyPath := filepath.Join(os.TempDir(), utils.KeyFileName())

	f, err := os.OpenFile(keyPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create key file: %w", err)
	}
	if _, err := f.WriteString(keyText); err != nil {
		_ = f.Close()
		return "", errors.Join(fmt.Errorf("failed to write key file: %w", err), os.Remove(keyPath))
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close key file: %w", err)
	}
	return keyPath, nil
}
