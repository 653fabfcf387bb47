package export

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// Sink receives a finished export artifact.
type Sink interface {
	Export(ctx context.Context, filename string, content []byte) error
}

// Download answers an HTTP request with the artifact as an attachment.
type Download struct {
	w           http.ResponseWriter
	contentType string
}

func NewDownload(w http.ResponseWriter, contentType string) *Download {
	return &Download{w: w, contentType: contentType}
}

func (d *Download) Export(ctx context.Context, filename string, content []byte) error {
	header := d.w.Header()
	header.Set("Content-Type", d.contentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	header.Set("Content-Length", strconv.Itoa(len(content)))
	d.w.WriteHeader(http.StatusOK)
	if _, err := d.w.Write(content); err != nil {
		return fmt.Errorf("write download: %w", err)
	}
	return nil
}

// Dir writes artifacts into a directory, creating it when needed.
type Dir struct {
	Path string
}

func (d Dir) Export(ctx context.Context, filename string, content []byte) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	target := filepath.Join(d.Path, filepath.Base(filename))
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", target, err)
	}
	return nil
}
