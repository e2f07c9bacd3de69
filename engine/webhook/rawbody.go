package webhook

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadRawJSON reads at most maxBytes from r and verifies the payload is
// syntactically valid JSON. The raw bytes are returned untouched so the
// caller decides how to interpret them.
func ReadRawJSON(r io.Reader, maxBytes int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(b)) > maxBytes {
		return nil, fmt.Errorf("payload too large: exceeds %d bytes", maxBytes)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("invalid json payload")
	}
	return b, nil
}
