package backend

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/remote"
)

// Caller is the part of remote.Client the API needs.
type Caller interface {
	Do(ctx context.Context, req remote.Request) (*remote.Result, error)
}

// API wraps every backend endpoint the console consumes. The bearer token
// travels with each call; the API holds no session.
type API struct {
	client Caller
	log    *zap.Logger
}

func New(client Caller, log *zap.Logger) *API {
	return &API{client: client, log: logger.OrNop(log)}
}

func (a *API) get(ctx context.Context, token, path string, query url.Values, key string, out any) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Token:  token,
	}, key, out)
}

func (a *API) send(ctx context.Context, req remote.Request, key string, out any) error {
	res, err := a.client.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := decodeEnvelope(res.Data, key, out); err != nil {
		a.log.Error("backend body did not match the expected shape",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err),
			zap.ByteString("body", remote.Truncate(res.Data, remote.LogBodyLimit)),
		)
		return &remote.Error{
			Kind:    remote.KindDecode,
			Status:  res.Status,
			Message: "invalid response from server",
			Err:     err,
		}
	}
	return nil
}

// decodeEnvelope accepts either the bare payload or an object wrapping it
// under key (or "data").
func decodeEnvelope(data []byte, key string, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err == nil {
			for _, k := range []string{key, "data"} {
				if k == "" {
					continue
				}
				if raw, ok := env[k]; ok {
					return json.Unmarshal(raw, out)
				}
			}
		}
	}

	return json.Unmarshal(trimmed, out)
}
