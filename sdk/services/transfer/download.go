// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/config"
	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

// DownloadObject fetches a gs:// object (or, with a trailing slash, a whole
// prefix) through the interop API, without shelling out to gsutil.
func (s *TransferService) DownloadObject(ctx context.Context, req DownloadRequest) ([]DownloadInfo, error) {
	if s.storage == nil {
		return nil, errors.New("storage interop client not configured (set HMAC keys)")
	}
	pp, err := utils.ParseStoragePath(req.Source)
	if err != nil {
		return nil, err
	}

	var out []DownloadInfo
	if strings.HasSuffix(req.Source, "/") {
		out, err = s.downloadPrefix(ctx, pp, req)
	} else {
		out, err = s.downloadOne(ctx, pp, req)
	}
	if err != nil {
		return nil, err
	}
	if err := printListing(out, req.Format); err != nil {
		return out, err
	}
	return out, nil
}

func (s *TransferService) downloadOne(ctx context.Context, pp *utils.ParsedPath, req DownloadRequest) ([]DownloadInfo, error) {
	target, err := chooseLocalTarget(req.Destination, filepath.Base(pp.Key))
	if err != nil {
		return nil, err
	}

	utils.Infof("Downloading gs://%s/%s → %s", pp.Bucket, pp.Key, target)
	if req.Verbose {
		err = s.storage.DownloadObjectWithProgress(ctx, pp.Bucket, pp.Key, target, singleProgressHook())
	} else {
		err = s.storage.DownloadObject(ctx, pp.Bucket, pp.Key, target)
	}
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	st, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	return []DownloadInfo{{Filename: filepath.Base(target), Size: st.Size(), Path: target}}, nil
}

func (s *TransferService) downloadPrefix(ctx context.Context, pp *utils.ParsedPath, req DownloadRequest) ([]DownloadInfo, error) {
	base := req.Destination
	if base == "" {
		base = "."
	}

	// totals prima del walk, per la percentuale globale
	all, err := s.storage.ListObjectsAll(ctx, pp.Bucket, pp.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to list prefix: %w", err)
	}
	var totalBytes int64
	for _, o := range all {
		totalBytes += o.Size
	}
	utils.Infof("Downloading gs://%s/%s → %s (%d objects)", pp.Bucket, pp.Key, base, len(all))

	gp := &utils.GlobalProgress{TotalKnown: totalBytes > 0, TotalBytes: totalBytes}

	var out []DownloadInfo
	err = s.storage.WalkPrefix(ctx, pp.Bucket, pp.Key, 1000, func(obj s3types.Object) error {
		key := aws.ToString(obj.Key)
		rel := strings.TrimPrefix(key, pp.Key)
		target := filepath.Join(base, rel)

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create local directory: %w", err)
		}

		if req.Verbose {
			utils.Infof("   %s", rel)
		}
		if err := s.storage.DownloadObjectWithProgress(ctx, pp.Bucket, key, target, globalProgressHook(gp)); err != nil {
			return fmt.Errorf("failed to download %s: %w", key, err)
		}

		if st, err := os.Stat(target); err == nil && !st.IsDir() {
			out = append(out, DownloadInfo{Filename: filepath.Base(target), Size: st.Size(), Path: target})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	gp.Done()
	return out, nil
}

/* ------------ helpers ------------ */

// printListing writes the result listing to stdout in the requested format.
func printListing(infos []DownloadInfo, format string) error {
	if format == "" {
		return nil
	}
	rendered, err := utils.FormatOutput(infos, format)
	if err != nil {
		return fmt.Errorf("failed to render transfer listing: %w", err)
	}
	fmt.Println(rendered)
	return nil
}

// chooseLocalTarget:
// - dst vuoto → filename nella cwd
// - dst directory esistente → dst/filename
// - dst file esistente → dst
// - dst inesistente → crea directory dst e usa dst/filename
func chooseLocalTarget(dst, filename string) (string, error) {
	if dst == "" {
		return filename, nil
	}
	info, statErr := os.Stat(dst)
	if statErr == nil {
		if info.IsDir() {
			return filepath.Join(dst, filename), nil
		}
		return dst, nil
	}
	if os.IsNotExist(statErr) {
		if mkErr := os.MkdirAll(dst, 0o755); mkErr != nil {
			return "", mkErr
		}
		return filepath.Join(dst, filename), nil
	}
	return "", statErr
}

// singleProgressHook drives a one-line bar for a standalone object.
func singleProgressHook() *config.ProgressHook {
	var gp utils.GlobalProgress
	var prevWritten int64
	return &config.ProgressHook{
		OnStart: func(_ string, total int64) {
			if total > 0 {
				gp.TotalKnown = true
				gp.TotalBytes = total
			}
		},
		OnProgress: func(_ string, written, _ int64) {
			if delta := written - prevWritten; delta > 0 {
				gp.Add(delta)
				gp.Render(false)
			}
			prevWritten = written
		},
		OnDone: func(_ string, total int64, _ time.Duration) {
			if total > prevWritten {
				gp.Add(total - prevWritten)
			}
			gp.Render(true)
			gp.Done()
		},
	}
}

// globalProgressHook feeds a shared bar spanning many objects.
func globalProgressHook(gp *utils.GlobalProgress) *config.ProgressHook {
	var prevWritten int64
	return &config.ProgressHook{
		OnProgress: func(_ string, written, _ int64) {
			if delta := written - prevWritten; delta > 0 {
				gp.Add(delta)
				gp.Render(false)
			}
			prevWritten = written
		},
		OnDone: func(_ string, total int64, _ time.Duration) {
			// arrotondamenti: conta comunque tutto il file
			if total > prevWritten {
				gp.Add(total - prevWritten)
				gp.Render(true)
			}
		},
	}
}
