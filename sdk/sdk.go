// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package sdk is the convenience surface for notebook code: one-call
// authentication, secret retrieval, storage transfer and argv simulation,
// configured from the environment and the ~/.colabgcp.ini profile.
package sdk

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/services/auth"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/services/secret"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/services/transfer"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

var initOnce sync.Once

// Init loads the INI profile (or bootstraps it from env variables) into
// viper. Convenience calls run it implicitly; call it directly to select a
// non-default environment.
func Init(optionalEnv ...string) error {
	var err error
	initOnce.Do(func() {
		err = utils.RegisterIniCfgWithViper(optionalEnv...)
	})
	return err
}

func loadConfig() config.Config {
	return config.Config{
		Gcp: config.GcpConfig{
			ProjectID:       viper.GetString(utils.GcpProjectID),
			SecretName:      viper.GetString(utils.GcpSecretName),
			CredentialsFile: viper.GetString(utils.GcpCredentialsFile),
			GcloudBin:       viper.GetString(utils.GcloudBin),
			GsutilBin:       viper.GetString(utils.GsutilBin),
		},
		Storage: config.StorageConfig{
			AccessKey:   viper.GetString(utils.StorageAccessKeyID),
			SecretKey:   viper.GetString(utils.StorageSecretAccessKey),
			Region:      viper.GetString(utils.StorageRegion),
			EndpointURL: viper.GetString(utils.StorageEndpointURL),
		},
	}
}

// Connect authenticates the runtime from a host secret and returns the
// credential handle. The key path is persisted into the active profile so
// later sessions and services pick it up.
func Connect(ctx context.Context, projectID, secretName string) (*auth.Credentials, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	svc, err := auth.NewAuthService(ctx, loadConfig())
	if err != nil {
		return nil, err
	}

	creds, err := svc.Connect(ctx, auth.ConnectRequest{ProjectID: projectID, SecretName: secretName})
	if err != nil {
		return nil, err
	}

	viper.Set(utils.GcpCredentialsFile, creds.KeyFile)
	if creds.ProjectID != "" {
		viper.Set(utils.GcpProjectID, creds.ProjectID)
	}
	env := viper.GetString(utils.CurrentEnvironment)
	if env == "" {
		env = "default"
	}
	if err := utils.UpdateIniFromStruct(utils.IniPath(), env); err != nil {
		utils.Warnf("could not persist credentials to profile: %v", err)
	}

	return creds, nil
}

// GetSecret fetches a Secret Manager secret version ("" = latest) as text.
func GetSecret(ctx context.Context, projectID, secretID, version string) (string, error) {
	if err := Init(); err != nil {
		return "", err
	}

	svc, err := secret.NewSecretService(ctx, loadConfig())
	if err != nil {
		return "", err
	}
	defer svc.Close()

	return svc.GetSecret(ctx, secret.GetRequest{Project: projectID, SecretID: secretID, Version: version})
}

// Transfer runs one gsutil invocation described by req.
func Transfer(ctx context.Context, req transfer.Request) error {
	if err := Init(); err != nil {
		return err
	}

	svc, err := transfer.NewTransferService(ctx, loadConfig())
	if err != nil {
		return fmt.Errorf("transfer init failed: %w", err)
	}
	return svc.Run(ctx, req)
}

// GetArgv returns the argument vector to parse: os.Args outside the notebook
// host, a simulated vector from params inside it.
func GetArgv(params string) ([]string, error) {
	return utils.GetArgv(params)
}
