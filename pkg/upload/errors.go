package upload

import "errors"

// Errors returned by Upload. Check with errors.Is.
var (
	// ErrFileNotFound is returned when a file part's path does not exist.
	ErrFileNotFound = errors.New("upload: file not found")

	// ErrFileUnreadable is returned when a file part exists but cannot be read.
	ErrFileUnreadable = errors.New("upload: file unreadable")

	// ErrTransport is returned when the request never produced a response.
	ErrTransport = errors.New("upload: transport failure")

	// ErrInvalidRequest is returned for requests without a URL or parts.
	ErrInvalidRequest = errors.New("upload: invalid request")
)
