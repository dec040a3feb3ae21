// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/services/auth"
)

func TestEnvStorePrefixedLookup(t *testing.T) {
	t.Setenv("COLAB_SECRET_PERSONAL_GCP_KEY", `{"type":"service_account"}`)

	v, err := auth.EnvStore{}.Get("personal_gcp_key")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"service_account"}`, v)
}

func TestEnvStoreBareLookup(t *testing.T) {
	t.Setenv("my_key", "value")

	v, err := auth.EnvStore{}.Get("my_key")
	require.NoError(t, err)
	assert.Equal(t, "value", v)
}

func TestEnvStoreMissing(t *testing.T) {
	_, err := auth.EnvStore{}.Get("definitely_absent_secret")
	assert.Error(t, err)
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "personal_gcp_key"), []byte("{}"), 0o600))

	store := auth.DirStore{Dir: dir}

	v, err := store.Get("personal_gcp_key")
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	_, err = store.Get("other")
	assert.Error(t, err)
}

func TestChainStoreOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k"), []byte("from-dir"), 0o600))
	t.Setenv("COLAB_SECRET_K", "from-env")

	chain := auth.ChainStore{auth.EnvStore{}, auth.DirStore{Dir: dir}}

	v, err := chain.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "from-env", v, "env store wins")

	_, err = chain.Get("missing")
	assert.Error(t, err)
}
