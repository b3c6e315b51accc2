package dub

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dubinc/dub-go/headers"
	"github.com/dubinc/dub-go/routes"
)

// QRCodeRequest mirrors GET /qr.
type QRCodeRequest struct {
	URL           string            `json:"url" dub:"query,required"`
	Logo          Optional[string]  `json:"logo" dub:"query"`
	Size          Optional[int]     `json:"size" dub:"query"`
	Level         Optional[QRLevel] `json:"level" dub:"query"`
	FgColor       Optional[string]  `json:"fgColor" dub:"query"`
	BgColor       Optional[string]  `json:"bgColor" dub:"query"`
	IncludeMargin Optional[bool]    `json:"includeMargin" dub:"query"`
}

// Validate rejects sizes the renderer cannot produce.
func (r QRCodeRequest) Validate() error {
	if size, ok := r.Size.Get(); ok && size <= 0 {
		return &ValidationError{Field: "/size", Expected: "positive integer", Got: fmt.Sprint(size)}
	}
	return nil
}

// QRCode is a rendered QR image.
type QRCode struct {
	ContentType string
	Data        []byte
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func (q *QRCode) decodeBinary(contentType string, data []byte) error {
	if !strings.HasPrefix(contentType, "image/") && !bytes.HasPrefix(data, pngSignature) {
		return &ValidationError{Field: "/", Expected: "image", Got: contentType}
	}
	q.ContentType = contentType
	if q.ContentType == "" {
		q.ContentType = "image/png"
	}
	q.Data = data
	return nil
}

// QRCodesClient wraps GET /qr.
type QRCodesClient struct {
	client *Client
}

// Get renders a QR code for req.URL.
func (c *QRCodesClient) Get(ctx context.Context, req QRCodeRequest, opts ...CallOption) (QRCode, error) {
	if c == nil || c.client == nil {
		return QRCode{}, ConfigError{Reason: "qr codes client not initialized"}
	}
	opts = append([]CallOption{WithHeader(headers.Accept, "image/png")}, opts...)
	return call[QRCode](ctx, c.client, http.MethodGet, routes.QR, req, opts)
}
