package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/config"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// SchemaValidator checks a generically decoded JSON document.
// *jsonschema.Schema satisfies it.
type SchemaValidator interface {
	Validate(v interface{}) error
}

// Options configures one call. Zero values fall back to the client defaults.
type Options struct {
	Method string
	// Body is JSON-encoded unless it is a *Multipart, url.Values or []byte.
	Body    any
	Retry   *int
	Timeout time.Duration
	Header  http.Header
	// Token is sent as a bearer Authorization header. Empty means the one
	// stored in the context, if any.
	Token  string
	Schema SchemaValidator
}

// Client is the single entry point for backend calls.
type Client struct {
	BasePath   *url.URL
	HTTPClient *http.Client
	Timeout    time.Duration
	Retry      int
	Logger     *logrus.Logger
}

// NewClient builds a client from the API settings of cfg.
func NewClient(cfg *config.Config) (*Client, error) {
	return NewClientWithBase(cfg.APIURL, cfg.APITimeout, cfg.APIRetry)
}

// NewClientWithBase builds a client for an explicit base path.
func NewClientWithBase(basePath string, timeout time.Duration, retry int) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(basePath, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base path: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base path %q: scheme and host are required", basePath)
	}
	if retry < 0 {
		retry = 0
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BasePath:   parsed,
		HTTPClient: &http.Client{},
		Timeout:    timeout,
		Retry:      retry,
		Logger:     utils.Logger,
	}, nil
}

// resolve joins the base path with a versioned resource path which may
// carry its own query string.
func (c *Client) resolve(p string) (string, error) {
	ref, err := url.Parse(p)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", p, err)
	}
	u := *c.BasePath
	u.Path = strings.TrimRight(c.BasePath.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	u.RawQuery = ref.RawQuery
	return u.String(), nil
}
