// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/services/auth"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

type mapStore map[string]string

func (m mapStore) Get(name string) (string, error) {
	if v, ok := m[name]; ok {
		return v, nil
	}
	return "", os.ErrNotExist
}

func fakeGcloud(t *testing.T, substitute string) *[][]string {
	t.Helper()
	var calls [][]string
	orig := utils.CommandContext
	utils.CommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		calls = append(calls, append([]string{name}, args...))
		return exec.CommandContext(ctx, substitute)
	}
	t.Cleanup(func() { utils.CommandContext = orig })
	return &calls
}

const fakeKey = `{"type":"service_account","project_id":"p"}`

func TestConnectWritesKeyAndActivates(t *testing.T) {
	t.Setenv(utils.ADCEnvVar, "") // restored afterwards
	calls := fakeGcloud(t, "true")

	svc := auth.NewAuthServiceWith(mapStore{"personal_gcp_key": fakeKey}, nil, config.GcpConfig{})
	creds, err := svc.Connect(context.Background(), auth.ConnectRequest{ProjectID: "my-project"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(creds.KeyFile) })

	// key file on disk, private, verbatim content
	st, err := os.Stat(creds.KeyFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())
	content, err := os.ReadFile(creds.KeyFile)
	require.NoError(t, err)
	assert.Equal(t, fakeKey, string(content))

	// ambient discovery env var points at it
	assert.Equal(t, creds.KeyFile, os.Getenv(utils.ADCEnvVar))

	// activation first, then project selection
	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"gcloud", "auth", "activate-service-account", "--key-file", creds.KeyFile}, (*calls)[0])
	assert.Equal(t, []string{"gcloud", "config", "set", "project", "my-project"}, (*calls)[1])
	assert.Equal(t, "my-project", creds.ProjectID)
}

func TestConnectDefaultSecretName(t *testing.T) {
	t.Setenv(utils.ADCEnvVar, "")
	fakeGcloud(t, "true")

	svc := auth.NewAuthServiceWith(mapStore{utils.DefaultSecretName: fakeKey}, nil, config.GcpConfig{})
	creds, err := svc.Connect(context.Background(), auth.ConnectRequest{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(creds.KeyFile) })

	assert.NotEmpty(t, creds.KeyFile)
	assert.Empty(t, creds.ProjectID, "no project requested, none discovered")
}

func TestConnectMissingSecret(t *testing.T) {
	fakeGcloud(t, "true")

	svc := auth.NewAuthServiceWith(mapStore{}, nil, config.GcpConfig{})
	_, err := svc.Connect(context.Background(), auth.ConnectRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personal_gcp_key")
}

func TestConnectRejectsInvalidJSON(t *testing.T) {
	fakeGcloud(t, "true")

	svc := auth.NewAuthServiceWith(mapStore{utils.DefaultSecretName: "not json"}, nil, config.GcpConfig{})
	_, err := svc.Connect(context.Background(), auth.ConnectRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid JSON")
}

func TestConnectPropagatesActivationFailure(t *testing.T) {
	t.Setenv(utils.ADCEnvVar, "")
	fakeGcloud(t, "false")

	svc := auth.NewAuthServiceWith(mapStore{utils.DefaultSecretName: fakeKey}, nil, config.GcpConfig{})
	_, err := svc.Connect(context.Background(), auth.ConnectRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activation failed")
}

func TestConnectUsesConfiguredDefaults(t *testing.T) {
	t.Setenv(utils.ADCEnvVar, "")
	calls := fakeGcloud(t, "true")

	conf := config.GcpConfig{ProjectID: "profile-project", SecretName: "profile_key"}
	svc := auth.NewAuthServiceWith(mapStore{"profile_key": fakeKey}, nil, conf)

	creds, err := svc.Connect(context.Background(), auth.ConnectRequest{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(creds.KeyFile) })

	assert.Equal(t, "profile-project", creds.ProjectID)
	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"gcloud", "config", "set", "project", "profile-project"}, (*calls)[1])
}

func TestConnectRequestOverridesConfiguredDefaults(t *testing.T) {
	t.Setenv(utils.ADCEnvVar, "")
	fakeGcloud(t, "true")

	conf := config.GcpConfig{ProjectID: "profile-project", SecretName: "profile_key"}
	svc := auth.NewAuthServiceWith(mapStore{"explicit_key": fakeKey}, nil, conf)

	creds, err := svc.Connect(context.Background(), auth.ConnectRequest{
		ProjectID:  "explicit-project",
		SecretName: "explicit_key",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(creds.KeyFile) })

	assert.Equal(t, "explicit-project", creds.ProjectID)
}

func TestConnectDiscoversProjectFromMetadata(t *testing.T) {
	t.Setenv(utils.ADCEnvVar, "")
	calls := fakeGcloud(t, "true")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Metadata-Flavor") != "Google" {
			http.Error(w, "missing flavor", http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte("metadata-project\n"))
	}))
	t.Cleanup(srv.Close)

	meta := config.NewMetadataHTTPWithBase(nil, srv.URL)
	svc := auth.NewAuthServiceWith(mapStore{utils.DefaultSecretName: fakeKey}, meta, config.GcpConfig{})

	creds, err := svc.Connect(context.Background(), auth.ConnectRequest{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(creds.KeyFile) })

	assert.Equal(t, "metadata-project", creds.ProjectID)
	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"gcloud", "config", "set", "project", "metadata-project"}, (*calls)[1])
}
