package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"heroes/internal/domain"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

type HTTP struct {
	Base   string
	HTTP   *http.Client
	Logger logrus.FieldLogger
}

// NewHTTP returns a transport rooted at base. A nil client falls back to
// http.DefaultClient and a nil logger discards output.
func NewHTTP(base string, httpClient *http.Client, logger logrus.FieldLogger) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &HTTP{
		Base:   strings.TrimRight(base, "/"),
		HTTP:   httpClient,
		Logger: logger,
	}
}

var _ domain.Transport = (*HTTP)(nil)

// Do sends one request. path is joined onto Base as-is; callers are responsible
// for any escaping.
func (c *HTTP) Do(ctx context.Context, method, path string, in, out any) error {
	u := c.url(path)

	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return &Error{Method: method, URL: u, Message: err.Error(), Err: err}
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &Error{Method: method, URL: u, Message: err.Error(), Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	log := c.Logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        u,
		"request_id": reqID,
	})

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return &Error{Method: method, URL: u, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Debug("request rejected")
		return statusError(method, u, resp.StatusCode, b)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: method, URL: u, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}
	log.Debug("request completed")

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &Error{Method: method, URL: u, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}
	return nil
}

func (c *HTTP) url(path string) string {
	return c.Base + "/" + strings.TrimLeft(path, "/")
}
