// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

type TransferService struct {
	storage   *config.StorageClient
	gsutilBin string
}

// NewTransferService builds the service. The interop storage client is only
// initialized when HMAC keys are configured; the gsutil wrapper works
// without it.
func NewTransferService(ctx context.Context, conf config.Config) (*TransferService, error) {
	bin := conf.Gcp.GsutilBin
	if bin == "" {
		bin = utils.DefaultBins[utils.GsutilBin]
	}

	svc := &TransferService{gsutilBin: bin}

	if conf.Storage.AccessKey != "" {
		sc, err := config.NewStorageClient(ctx, conf.Storage)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		svc.storage = sc
	}
	return svc, nil
}

// Plan returns the command Run would execute, without executing it.
func (s *TransferService) Plan(req Request) ([]string, error) {
	return BuildCommand(req, s.gsutilBin)
}

// Run assembles and executes one gsutil invocation. DryRun prints the
// command and stops. Output streams through to the caller's terminal; a
// failed transfer is reported as-is, no retry.
func (s *TransferService) Run(ctx context.Context, req Request) error {
	cmd, err := BuildCommand(req, s.gsutilBin)
	if err != nil {
		return err
	}

	if req.DryRun {
		fmt.Println(strings.Join(cmd, " "))
		return nil
	}

	if _, err := utils.RunCommand(ctx, cmd[0], cmd[1:], utils.RunOptions{Stream: true}); err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}
	return nil
}
