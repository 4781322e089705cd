package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
)

// buildBody encodes every file part into a multipart form. All files are
// read and closed before it returns.
func buildBody(files []FilePart) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, fp := range files {
		if err := writeFilePart(writer, fp); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart: %w", err)
	}
	return &body, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, fp FilePart) error {
	f, err := os.Open(fp.Path)
	if err != nil {
		return openError(err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile(fp.Field, filepath.Base(fp.Path))
	if err != nil {
		return fmt.Errorf("create %s field: %w", fp.Field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrFileUnreadable, fp.Path, err)
	}
	return nil
}

func openError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrFileUnreadable, err)
}
