package upload

import (
	"fmt"
	"io"
)

// Response is the status and raw body of a completed upload.
type Response struct {
	StatusCode int
	Body       []byte
}

// Print writes the status code on one line and the body, unmodified, on
// the next.
func (r *Response) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", r.StatusCode); err != nil {
		return err
	}
	if _, err := w.Write(r.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
