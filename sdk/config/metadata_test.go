// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
)

func TestMetadataProjectID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Google", r.Header.Get("Metadata-Flavor"))
		require.Equal(t, "/project/project-id", r.URL.Path)
		_, _ = w.Write([]byte("demo-project\n"))
	}))
	t.Cleanup(srv.Close)

	m := config.NewMetadataHTTPWithBase(nil, srv.URL)

	id, err := m.ProjectID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo-project", id)
}

func TestMetadataNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	m := config.NewMetadataHTTPWithBase(nil, srv.URL)

	_, err := m.ProjectID(context.Background())
	assert.Error(t, err)
}
