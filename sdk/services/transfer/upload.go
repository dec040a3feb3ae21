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

	"github.com/scc-digitalhub/colab-gcp-sdk/sdk/utils"
)

// UploadObject pushes a local file, or every file under a local directory,
// to a gs:// destination through the interop API.
func (s *TransferService) UploadObject(ctx context.Context, req UploadRequest) ([]DownloadInfo, error) {
	if s.storage == nil {
		return nil, errors.New("storage interop client not configured (set HMAC keys)")
	}
	if req.Input == "" {
		return nil, errors.New("missing required input file or directory")
	}
	pp, err := utils.ParseStoragePath(req.Destination)
	if err != nil {
		return nil, err
	}

	var out []DownloadInfo
	if utils.IsLocalDir(req.Input) {
		out, err = s.uploadDir(ctx, pp, req)
	} else {
		out, err = s.uploadFile(ctx, pp, req)
	}
	if err != nil {
		return nil, err
	}
	if err := printListing(out, req.Format); err != nil {
		return out, err
	}
	return out, nil
}

func (s *TransferService) uploadFile(ctx context.Context, pp *utils.ParsedPath, req UploadRequest) ([]DownloadInfo, error) {
	key := pp.Key
	if key == "" || strings.HasSuffix(key, "/") {
		key += filepath.Base(req.Input)
	}

	file, err := os.Open(req.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	utils.Infof("Uploading %s → gs://%s/%s", req.Input, pp.Bucket, key)
	if req.Verbose {
		_, err = s.storage.UploadObjectWithProgress(ctx, pp.Bucket, key, file, singleProgressHook())
	} else {
		_, err = s.storage.UploadObject(ctx, pp.Bucket, key, file)
	}
	if err != nil {
		return nil, fmt.Errorf("upload error: %w", err)
	}

	st, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat error: %w", err)
	}
	return []DownloadInfo{{Filename: st.Name(), Size: st.Size(), Path: req.Input}}, nil
}

func (s *TransferService) uploadDir(ctx context.Context, pp *utils.ParsedPath, req UploadRequest) ([]DownloadInfo, error) {
	// Enumerazione file locali (totals per la progress globale)
	var localFiles []string
	var totalBytes int64
	err := filepath.Walk(req.Input, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk error: %w", walkErr)
		}
		if info.IsDir() {
			return nil
		}
		localFiles = append(localFiles, path)
		totalBytes += info.Size()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate local directory: %w", err)
	}

	utils.Infof("Uploading directory %s → gs://%s/%s (%d files)", req.Input, pp.Bucket, pp.Key, len(localFiles))

	gp := &utils.GlobalProgress{TotalKnown: totalBytes > 0, TotalBytes: totalBytes}

	var out []DownloadInfo
	for i, path := range localFiles {
		rel, err := filepath.Rel(req.Input, path)
		if err != nil {
			return nil, fmt.Errorf("relative path error: %w", err)
		}
		key := filepath.ToSlash(filepath.Join(pp.Key, rel))

		if req.Verbose {
			utils.Infof("   [%d/%d] %s → gs://%s/%s", i+1, len(localFiles), rel, pp.Bucket, key)
		}

		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file error: %w", err)
		}
		_, upErr := s.storage.UploadObjectWithProgress(ctx, pp.Bucket, key, file, globalProgressHook(gp))
		st, stErr := file.Stat()
		_ = file.Close()
		if upErr != nil {
			return nil, fmt.Errorf("upload error (%s): %w", path, upErr)
		}
		if stErr == nil {
			out = append(out, DownloadInfo{Filename: st.Name(), Size: st.Size(), Path: path})
		}
	}

	gp.Done()
	return out, nil
}
