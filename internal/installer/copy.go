// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"context"
	"io"
	"os"
)

const copyBufferSize = 1 << 20

// copyWithProgress copies src to dst in chunks, checking ctx before each one.
// total <= 0 disables progress reports.
func copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total int64, progress func(float64)) (int64, error) {
	buf := make([]byte, copyBufferSize)
	var written int64

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			w, err := dst.Write(buf[:n])
			written += int64(w)
			if err != nil {
				return written, err
			}
			if w != n {
				return written, io.ErrShortWrite
			}
			if progress != nil && total > 0 {
				progress(min(float64(written)/float64(total), 1))
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

// writeFile streams src into a new file at path. The file is removed when the
// copy fails.
func writeFile(ctx context.Context, path string, src io.Reader, total int64, progress func(float64)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = copyWithProgress(ctx, f, src, total, progress)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	if progress != nil {
		progress(1)
	}
	return nil
}
