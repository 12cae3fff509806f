package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vibecli/internal/logging"
)

// HTTPClient is the production Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
	timeout time.Duration
}

// NewHTTPClient builds a client for the given base origin. The trailing
// slash of baseURL, if any, is trimmed so paths can be joined verbatim.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		tokens:  tokens,
		log:     log,
		timeout: timeout,
	}
}

// requestOptions describes one outgoing request. At most one of json and
// form may be set.
type requestOptions struct {
	method string
	path   string
	json   any
	form   url.Values
	query  url.Values
}

func (c *HTTPClient) do(ctx context.Context, opts requestOptions) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + opts.path
	if len(opts.query) > 0 {
		target += "?" + opts.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case opts.json != nil:
		b, err := json.Marshal(opts.json)
		if err != nil {
			return Result{}, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case opts.form != nil:
		body = strings.NewReader(opts.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, body)
	if err != nil {
		return Result{}, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	// The token store is consulted before every request so a login or
	// logout in the same process takes effect immediately.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", opts.method, "path", opts.path, "error", err.Error())
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "reading response failed", "method", opts.method, "path", opts.path, "error", err.Error())
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Info(ctx, "request completed", "method", opts.method, "path", opts.path, "status", resp.StatusCode)

	// The status code is deliberately not inspected: the body shape is the
	// contract, and error payloads are surfaced verbatim by the callers.
	return ParseBody(string(b)), nil
}

type registerRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type postRequest struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, username, displayName, password string) (Result, error) {
	return c.do(ctx, requestOptions{
		method: http.MethodPost,
		path:   "/register",
		json:   registerRequest{Username: username, DisplayName: displayName, Password: password},
	})
}

func (c *HTTPClient) Token(ctx context.Context, username, password string) (Result, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return c.do(ctx, requestOptions{method: http.MethodPost, path: "/token", form: form})
}

func (c *HTTPClient) Feed(ctx context.Context, page, pageSize int) (Result, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	return c.do(ctx, requestOptions{method: http.MethodGet, path: "/feed", query: query})
}

func (c *HTTPClient) CreatePost(ctx context.Context, content string, parentID *int64) (Result, error) {
	return c.do(ctx, requestOptions{
		method: http.MethodPost,
		path:   "/posts",
		json:   postRequest{Content: content, ParentID: parentID},
	})
}

func (c *HTTPClient) Like(ctx context.Context, postID int64) (Result, error) {
	return c.do(ctx, requestOptions{
		method: http.MethodPost,
		path:   fmt.Sprintf("/posts/%d/like", postID),
	})
}

func (c *HTTPClient) Profile(ctx context.Context, username string) (Result, error) {
	return c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(username),
	})
}
