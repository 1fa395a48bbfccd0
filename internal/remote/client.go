package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/salon-console/internal/logger"
)

const HeaderRequestID = "X-Request-ID"

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RPS        float64
	HTTPClient *http.Client
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  string
}

// Result mirrors what the caller gets back from the backend. Data holds the
// raw JSON body and is only set for 2xx responses.
type Result struct {
	OK     bool
	Status int
	Data   []byte
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func New(opts Options, log *zap.Logger) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := int(opts.RPS)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		limiter: limiter,
		log:     logger.OrNop(log),
	}
}

// Do performs one backend call. A missing token short-circuits with
// ErrNotAuthenticated before any network traffic. Failures are returned as
// *Error; for HTTP failures the Result is returned too so callers can see
// the status.
func (c *Client) Do(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Token) == "" {
		return nil, ErrNotAuthenticated
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindConnection, Message: msgConnectionFailed, Err: err}
		}
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	requestID := httpReq.Header.Get(HeaderRequestID)
	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("method", httpReq.Method),
		zap.String("path", req.Path),
	)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn("backend call failed", zap.Error(err))
		return nil, &Error{Kind: KindConnection, Message: msgConnectionFailed, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("backend body read failed", zap.Error(err))
		return nil, &Error{Kind: KindConnection, Message: msgConnectionFailed, Err: err}
	}

	log.Debug("backend call",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	result := &Result{Status: resp.StatusCode}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &Error{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: errorMessage(body),
		}
	}

	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		log.Error("backend returned non-JSON body", zap.ByteString("body", Truncate(body, LogBodyLimit)))
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: msgInvalidResponse}
	}

	result.OK = true
	result.Data = body
	return result, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Message: msgInvalidResponse, Err: err}
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: msgConnectionFailed, Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.Token)

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set(HeaderRequestID, requestID)

	return httpReq, nil
}

// errorMessage pulls a human message out of an error body, falling back
// to a generic string.
func errorMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return msgRequestFailed
	}
	for _, key := range []string{"message", "error", "detail"} {
		if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return msgRequestFailed
}

// LogBodyLimit caps how much of a response body goes into a log entry.
const LogBodyLimit = 512

// Truncate returns at most the first n bytes of b.
func Truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
