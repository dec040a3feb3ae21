// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"context"
	"errors"
	"fmt"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
)

type SecretService struct {
	client config.SecretAccessor
}

// NewSecretService builds a Secret Manager-backed service. Credentials come
// from conf.Gcp.CredentialsFile when set (e.g. auth.Connect's key path),
// otherwise from ambient application-default discovery — which means
// auth.Connect must have run first, or the client call fails with the
// underlying authentication error.
func NewSecretService(ctx context.Context, conf config.Config) (*SecretService, error) {
	client, err := config.NewSecretClient(ctx, conf.Gcp)
	if err != nil {
		return nil, fmt.Errorf("secret service init failed: %w", err)
	}
	return &SecretService{client: client}, nil
}

// NewSecretServiceWith wires an explicit accessor (tests).
func NewSecretServiceWith(client config.SecretAccessor) *SecretService {
	return &SecretService{client: client}
}

// GetSecret fetches one secret version's payload as text.
func (s *SecretService) GetSecret(ctx context.Context, req GetRequest) (string, error) {
	if req.Project == "" {
		return "", errors.New("project not specified")
	}
	if req.SecretID == "" {
		return "", errors.New("secret id not specified")
	}
	version := req.Version
	if version == "" {
		version = "latest"
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", req.Project, req.SecretID, version)
	return s.client.AccessSecretVersion(ctx, name)
}

// Close releases the underlying client connection.
func (s *SecretService) Close() error {
	return s.client.Close()
}
