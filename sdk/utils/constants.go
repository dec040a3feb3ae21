// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".colabgcp.ini"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	GcpProjectID       = "gcp_project_id"
	GcpSecretName      = "gcp_secret_name"
	GcpCredentialsFile = "gcp_credentials_file"
	GcloudBin          = "gcloud_bin"
	GsutilBin          = "gsutil_bin"

	StorageEndpointURL     = "storage_endpoint_url"
	StorageAccessKeyID     = "storage_access_key_id"
	StorageSecretAccessKey = "storage_secret_access_key"
	StorageRegion          = "storage_region"
	SecretsDir             = "secrets_dir"

	// DefaultSecretName is the conventional Colab secret holding the
	// service-account JSON text.
	DefaultSecretName = "personal_gcp_key"

	// ADCEnvVar is consumed by every Google client library for
	// application-default credential discovery.
	ADCEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"

	// ColabHostEnvVar is present on Colab runtimes and nowhere else.
	ColabHostEnvVar = "COLAB_RELEASE_TAG"

	// ArgvPlaceholder stands in for the program name when arguments are
	// simulated from a literal string.
	ArgvPlaceholder = "notebook"

	// StorageURIPrefix marks a path as living in the object-storage namespace.
	StorageURIPrefix = "gs://"
)

var DefaultBins = map[string]string{
	GcloudBin: "gcloud",
	GsutilBin: "gsutil",
}
