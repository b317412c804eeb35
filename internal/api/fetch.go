package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// Fetch performs one backend call and decodes a 2xx body into T.
//
// Cancellation or timeout yields an Abort error, a non-2xx status yields the
// raw response, and any other failure yields a Server error. Transport
// failures are re-attempted up to the retry count with no delay; aborts and
// HTTP responses never are.
func Fetch[T any](ctx context.Context, c *Client, path string, opts Options) Result[T] {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	retry := c.Retry
	if opts.Retry != nil {
		retry = max(*opts.Retry, 0)
	}
	timeout := c.Timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	if opts.Token == "" {
		opts.Token = TokenFromContext(ctx)
	}

	target, err := c.resolve(path)
	if err != nil {
		return failed[T](ErrorTypeServer, err)
	}
	payload, contentType, err := encodeBody(opts.Body)
	if err != nil {
		return failed[T](ErrorTypeServer, fmt.Errorf("%w: %v", utils.ErrInvalidBody, err))
	}

	requestID := uuid.NewString()
	logger := c.Logger.WithFields(logrus.Fields{
		"method":    method,
		"path":      path,
		"requestID": requestID,
	})

	var (
		resp *http.Response
		body []byte
	)
	for attempt := 0; ; attempt++ {
		start := time.Now()
		resp, body, err = c.doOnce(ctx, method, target, payload, contentType, timeout, requestID, opts)
		if err == nil {
			logger.WithFields(logrus.Fields{
				"status":   resp.StatusCode,
				"duration": time.Since(start),
			}).Debug("Backend call completed")
			break
		}
		if isAbort(ctx, err) {
			logger.WithError(err).Warn("Backend call aborted")
			return failed[T](ErrorTypeAbort, err)
		}
		if attempt >= retry {
			logger.WithError(err).Warn("Backend call failed")
			return failed[T](ErrorTypeServer, err)
		}
		logger.WithError(err).Infof("Backend call failed, retrying (%d/%d)", attempt+1, retry)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return unexpected[T](resp)
	}

	var out T
	if len(bytes.TrimSpace(body)) == 0 {
		return ok(out)
	}
	if opts.Schema != nil {
		var doc any
		if err := json.Unmarshal(body, &doc); err != nil {
			return failed[T](ErrorTypeServer, fmt.Errorf("failed to decode response: %w", err))
		}
		if err := opts.Schema.Validate(doc); err != nil {
			logger.WithError(err).Warn("Backend response violates schema")
			return failed[T](ErrorTypeServer, fmt.Errorf("%w: %v", utils.ErrSchemaViolation, err))
		}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return failed[T](ErrorTypeServer, fmt.Errorf("failed to decode response: %w", err))
	}
	return ok(out)
}

// doOnce performs a single attempt and reads the whole body under the
// attempt's timeout. The returned response carries a rewound copy of it.
func (c *Client) doOnce(
	ctx context.Context,
	method, target string,
	payload []byte,
	contentType string,
	timeout time.Duration,
	requestID string,
	opts Options,
) (*http.Response, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, body, nil
}

func encodeBody(body any) ([]byte, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Multipart:
		return b.encode()
	case url.Values:
		return []byte(b.Encode()), "application/x-www-form-urlencoded", nil
	case []byte:
		return b, "application/json", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	}
}

// isAbort reports whether err comes from cancellation or a timeout, either
// of the caller's context or of the attempt itself.
func isAbort(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
