// Package gateway issues HTTP calls against a remote JSON API through a
// shared connection pool and classifies every response as parsed JSON, raw
// text, or a typed API error.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"lasso/internal/errors"
)

// DefaultTimeout bounds a call when the descriptor leaves Timeout unset.
const DefaultTimeout = 10 * time.Second

// unknownErrorDetail is reported when an error payload omits its `errors`
// field.
const unknownErrorDetail = "unknown error"

const contentTypeForm = "application/x-www-form-urlencoded"

// Call describes one logical request against the remote API. It is built
// and consumed within a single Do invocation.
type Call struct {
	URL     string
	Method  string
	Timeout time.Duration
	Params  Params
	Headers map[string]string
}

// Gateway translates calls into wire-level requests over a pooled client
// and interprets the responses. It holds no mutable state of its own; the
// pool inside the client is the only shared resource, and it is safe for
// concurrent use by many callers.
type Gateway struct {
	client *resty.Client
	logger *slog.Logger
}

// New creates a gateway over an explicit pooled client. Services that own
// the pool lifecycle build one with NewPooledClient and inject it here.
func New(client *resty.Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		client: client,
		logger: logger,
	}
}

// Default creates a gateway over the process-wide shared pool.
func Default(logger *slog.Logger) *Gateway {
	return New(SharedClient(), logger)
}

// Do issues the described call and classifies the response.
//
// The method must be one of GET, POST, PUT, or DELETE (case-insensitive);
// anything else fails with an InvalidMethodError before any network I/O.
// GET serializes parameters into the URL query string, POST sends them as
// a form-encoded body, PUT attaches them through the transport's query
// parameter channel, and DELETE ignores them. Connection-level failures
// and timeout expiry surface as a TransportError; a failing status or an
// error payload embedded in a 2xx body surface as an APIError.
func (g *Gateway) Do(ctx context.Context, call Call) (Outcome, error) {
	method := strings.ToUpper(call.Method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return Outcome{}, errors.NewInvalidMethodError(call.Method)
	}

	timeout := call.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := g.client.R().SetContext(ctx)
	if len(call.Headers) > 0 {
		req.SetHeaders(call.Headers)
	}

	var resp *resty.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = req.Get(buildURL(call.URL, call.Params))
	case http.MethodPost:
		if encoded := call.Params.Encode(); encoded != "" {
			req.SetHeader("Content-Type", contentTypeForm).SetBody(encoded)
		}
		resp, err = req.Post(call.URL)
	case http.MethodPut:
		if encoded := call.Params.Encode(); encoded != "" {
			req.SetQueryString(encoded)
		}
		resp, err = req.Put(call.URL)
	case http.MethodDelete:
		// Parameters are deliberately ignored for DELETE; only headers
		// and the timeout apply.
		resp, err = req.Delete(call.URL)
	}
	if err != nil {
		g.logger.ErrorContext(ctx, "Request failed",
			"method", method,
			"url", call.URL,
			"error", err)
		return Outcome{}, errors.NewTransportError(method, call.URL, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return Outcome{}, errors.NewAPIError(resp.StatusCode(), resp.Body(), resp.Header())
	}

	return interpret(resp.Body())
}

// Get issues a GET call; parameters become the URL query string.
func (g *Gateway) Get(ctx context.Context, url string, params Params, headers map[string]string) (Outcome, error) {
	return g.Do(ctx, Call{URL: url, Method: http.MethodGet, Params: params, Headers: headers})
}

// Post issues a POST call; parameters travel form-encoded in the body.
func (g *Gateway) Post(ctx context.Context, url string, params Params, headers map[string]string) (Outcome, error) {
	return g.Do(ctx, Call{URL: url, Method: http.MethodPost, Params: params, Headers: headers})
}

// Put issues a PUT call; parameters travel as query parameters.
func (g *Gateway) Put(ctx context.Context, url string, params Params, headers map[string]string) (Outcome, error) {
	return g.Do(ctx, Call{URL: url, Method: http.MethodPut, Params: params, Headers: headers})
}

// Delete issues a DELETE call; the remote API takes no parameters here.
func (g *Gateway) Delete(ctx context.Context, url string, headers map[string]string) (Outcome, error) {
	return g.Do(ctx, Call{URL: url, Method: http.MethodDelete, Headers: headers})
}

// interpret decodes a successful response body and classifies it.
func interpret(body []byte) (Outcome, error) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		// Non-JSON success body, e.g. a liveness endpoint answering "pong".
		return TextOutcome(string(body)), nil
	}

	if detail, found := embeddedError(value); found {
		return Outcome{}, errors.NewEmbeddedAPIError(detail)
	}

	return JSONOutcome(value), nil
}

// embeddedError detects an application-level error reported inside a
// structurally successful body. A non-empty array is truncated to its
// first element before inspection; an object signals an error when its
// result field equals "error" or when it carries an error key. The detail
// comes from the object's errors field when present.
func embeddedError(value any) (any, bool) {
	if arr, ok := value.([]any); ok && len(arr) > 0 {
		value = arr[0]
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}

	result, _ := obj["result"].(string)
	if _, hasError := obj["error"]; result != "error" && !hasError {
		return nil, false
	}

	if detail, ok := obj["errors"]; ok {
		return detail, true
	}
	return unknownErrorDetail, true
}
