// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config complessiva passata all’SDK (niente viper/INI qui)
type Config struct {
	Gcp     GcpConfig
	Storage StorageConfig
}

type GcpConfig struct {
	// ProjectID is the default project for gcloud and Secret Manager calls.
	ProjectID string
	// SecretName is the host secret consulted when a connect request names
	// none.
	SecretName string
	// CredentialsFile is the path of a service-account key file. When empty,
	// clients fall back to ambient application-default credentials.
	CredentialsFile string
	// GcloudBin and GsutilBin override the executables looked up in PATH.
	GcloudBin string
	GsutilBin string
}

// StorageConfig configures the S3-interoperability XML API of Cloud Storage
// (HMAC key pair, path-style requests). Only the in-process object transfer
// needs it; the gsutil wrapper does not.
type StorageConfig struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	EndpointURL  string
}
