// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MetadataHTTP queries the GCE/Colab metadata server. Colab VMs expose it
// like any other GCE instance, so the default project can be discovered
// without configuration.
type MetadataHTTP interface {
	ProjectID(ctx context.Context) (string, error)
	Get(ctx context.Context, path string) (string, error)
}

const metadataBaseURL = "http://metadata.google.internal/computeMetadata/v1"

type metadataHTTP struct {
	httpClient *http.Client
	baseURL    string
}

func NewMetadataHTTP(httpClient *http.Client) MetadataHTTP {
	if httpClient == nil {
		// the metadata server is link-local: fail fast when absent
		httpClient = &http.Client{Timeout: 2 * time.Second}
	}
	return &metadataHTTP{httpClient: httpClient, baseURL: metadataBaseURL}
}

// NewMetadataHTTPWithBase is used by tests to point at a fake server.
func NewMetadataHTTPWithBase(httpClient *http.Client, baseURL string) MetadataHTTP {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Second}
	}
	return &metadataHTTP{httpClient: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (m *metadataHTTP) ProjectID(ctx context.Context) (string, error) {
	return m.Get(ctx, "/project/project-id")
}

func (m *metadataHTTP) Get(ctx context.Context, path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	// Required by the metadata server on every request.
	req.Header.Set("Metadata-Flavor", "Google")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("metadata server responded with: %s", resp.Status)
	}
	return strings.TrimSpace(string(b)), rerr
}
