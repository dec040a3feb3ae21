// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"fmt"
	"strings"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

// BuildCommand translates a Request into the gsutil argument vector. It never
// touches the network; the only filesystem access is stat-ing Src to decide
// between file and directory semantics.
func BuildCommand(req Request, gsutilBin string) ([]string, error) {
	if gsutilBin == "" {
		gsutilBin = utils.DefaultBins[utils.GsutilBin]
	}
	if req.Src == "" || req.Dst == "" {
		return nil, fmt.Errorf("src and dst are both required")
	}
	if !utils.IsStorageURI(req.Src) && !utils.IsStorageURI(req.Dst) {
		return nil, fmt.Errorf("at least one of src/dst must be a %s URI", utils.StorageURIPrefix)
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeRsync
	}
	if mode != ModeRsync && mode != ModeCp {
		return nil, fmt.Errorf("unsupported mode '%s' (want rsync or cp)", mode)
	}

	// rsync is directory-oriented: a single local file silently becomes cp.
	if mode == ModeRsync && utils.IsLocalFile(req.Src) {
		mode = ModeCp
	}

	dirOriented := utils.IsLocalDir(req.Src) ||
		(utils.IsStorageURI(req.Src) && strings.HasSuffix(req.Src, "/")) ||
		mode == ModeRsync

	// -m always: multi-stream transfer costs nothing on small payloads
	cmd := []string{gsutilBin, "-m", string(mode)}

	if dirOriented {
		cmd = append(cmd, "-r")
	}
	switch mode {
	case ModeRsync:
		if req.Delete {
			cmd = append(cmd, "-d")
		}
		if req.Checksum {
			cmd = append(cmd, "-c")
		}
	case ModeCp:
		if req.PreservePosix {
			cmd = append(cmd, "-p")
		}
	}

	cmd = append(cmd, req.ExtraArgs...)
	cmd = append(cmd, req.Src, req.Dst)
	return cmd, nil
}
