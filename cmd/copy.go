package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-progressbar/pkg/progressbar"
)

func newCopyCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file and show the transfer rate",
		Long:  "Copy SRC to DST, showing bytes transferred, the average rate and the estimated time remaining.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], args[1], title)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "progress bar title (default: source file name)")

	return cmd
}

func runCopy(cmd *cobra.Command, srcPath, dstPath, title string) (err error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source is a directory: %s", srcPath)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close destination: %w", cerr)
		}
	}()

	if title == "" {
		title = filepath.Base(srcPath)
	}
	s.Logger.Debug("copy started", "src", srcPath, "dst", dstPath, "bytes", info.Size())

	opts := append(s.Options, progressbar.WithStyle(progressbar.FileTransferStyle()))
	buf := make([]byte, max(s.Config.Copy.BufferSize, 1))
	ctx := cmd.Context()

	err = progressbar.Run(title, info.Size(), cmd.ErrOrStderr(), func(b *progressbar.Bar) error {
		w := io.MultiWriter(dst, progressbar.NewWriter(b))
		_, err := io.CopyBuffer(w, &contextReader{ctx: ctx, r: src}, buf)
		return err
	}, opts...)
	if err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	s.Logger.Debug("copy finished", "src", srcPath, "dst", dstPath)
	return nil
}

// contextReader stops reading once ctx is done. It also hides the source's
// WriterTo so io.CopyBuffer uses the configured buffer.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
