package upload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/latexnn/modelpost/pkg/log"
)

// Uploader sends multipart uploads through an HTTPClient.
type Uploader struct {
	client HTTPClient
	logger log.Logger
}

// New creates an Uploader. A nil logger is replaced by a no-op one.
func New(client HTTPClient, logger log.Logger) *Uploader {
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Uploader{
		client: client,
		logger: logger,
	}
}

// Upload posts the request's files and waits for the whole response.
func (u *Uploader) Upload(ctx context.Context, r Request) (*Response, error) {
	target, err := r.target()
	if err != nil {
		return nil, err
	}

	body, contentType, err := buildBody(r.Files)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrInvalidRequest, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-Id", requestID)

	u.logger.Debug("sending upload",
		log.String("url", target),
		log.Int("parts", len(r.Files)),
		log.Int("bytes", body.Len()),
		log.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	u.logger.Info("upload complete",
		log.String("url", target),
		log.Int("status", resp.StatusCode),
		log.Int("bytes", len(data)),
		log.Duration("elapsed", time.Since(start)),
		log.String("request_id", requestID),
	)

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
