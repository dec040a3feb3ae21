// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

// SecretStore is a read-only lookup into the host's secret store.
type SecretStore interface {
	Get(name string) (string, error)
}

// envStorePrefix mirrors how the Colab runtime exposes user secrets to the
// VM environment.
const envStorePrefix = "COLAB_SECRET_"

// EnvStore reads secrets from environment variables: COLAB_SECRET_<NAME>
// first, plain <NAME> as fallback.
type EnvStore struct{}

func (EnvStore) Get(name string) (string, error) {
	if v, ok := os.LookupEnv(envStorePrefix + strings.ToUpper(name)); ok && v != "" {
		return v, nil
	}
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("secret '%s' not found in environment", name)
}

// DirStore reads each secret from a file named after it under Dir.
type DirStore struct {
	Dir string
}

func (s DirStore) Get(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("secret '%s' not found in %s: %w", name, s.Dir, err)
	}
	return string(b), nil
}

// ChainStore tries each store in order, returning the first hit.
type ChainStore []SecretStore

func (c ChainStore) Get(name string) (string, error) {
	var lastErr error
	for _, s := range c {
		v, err := s.Get(name)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("secret '%s' not found", name)
	}
	return "", lastErr
}

// DefaultStore resolves against the environment first, then the configured
// secrets directory (secrets_dir, default ~/.colabgcp/secrets).
func DefaultStore() SecretStore {
	dir := viper.GetString(utils.SecretsDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".colabgcp", "secrets")
	}
	return ChainStore{EnvStore{}, DirStore{Dir: dir}}
}
