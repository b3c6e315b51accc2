package dub

import (
	"fmt"
	"net/http"

	"github.com/dubinc/dub-go/headers"
)

// RawResponse is the undecoded HTTP exchange behind a call. It is only
// captured when the caller asks for it with WithRawResponse.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// binaryBody is implemented by response types that are not JSON.
type binaryBody interface {
	decodeBinary(contentType string, data []byte) error
}

// mapResponse applies the status table: 2xx decodes into out with its
// inbound schema, anything else becomes a typed error. out may be partially
// written when decoding fails, so callers discard it whenever an error is
// returned.
func mapResponse(resp *http.Response, out any, raw *RawResponse) error {
	data, err := readBody(resp)
	if err != nil {
		return fmt.Errorf("dub: read response body: %w", err)
	}
	if raw != nil {
		*raw = RawResponse{
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       data,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp, data)
	}
	if out == nil {
		return nil
	}
	if bin, ok := out.(binaryBody); ok {
		err = bin.decodeBinary(resp.Header.Get(headers.ContentType), data)
	} else {
		err = Unmarshal(data, out)
	}
	if err != nil {
		return &ResponseValidationError{Status: resp.StatusCode, Err: err}
	}
	return nil
}
