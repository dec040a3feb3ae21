// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"
	"unicode/utf8"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretAccessor is the slice of the Secret Manager API the SDK needs.
type SecretAccessor interface {
	AccessSecretVersion(ctx context.Context, name string) (string, error)
	Close() error
}

type secretClient struct {
	client *secretmanager.Client
}

// NewSecretClient builds a Secret Manager client. When cfg.CredentialsFile is
// set the key file is passed explicitly to the constructor; otherwise the
// client falls back to application-default credentials (the env var written
// by auth.Connect).
func NewSecretClient(ctx context.Context, cfg GcpConfig) (SecretAccessor, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("secret manager init failed: %w", err)
	}
	return &secretClient{client: client}, nil
}

// AccessSecretVersion fetches the payload of a fully qualified version name
// (projects/<p>/secrets/<s>/versions/<v>) and decodes it as UTF-8 text.
func (c *secretClient) AccessSecretVersion(ctx context.Context, name string) (string, error) {
	resp, err := c.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version %s: %w", name, err)
	}

	data := resp.GetPayload().GetData()
	if !utf8.Valid(data) {
		return "", fmt.Errorf("secret version %s payload is not valid UTF-8 text", name)
	}
	return string(data), nil
}

func (c *secretClient) Close() error {
	return c.client.Close()
}
