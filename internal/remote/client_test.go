package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/"}, zap.NewNop()), &hits
}

func TestClientDo(t *testing.T) {
	t.Run("Missing Token Skips The Network", func(t *testing.T) {
		c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		res, err := c.Do(context.Background(), Request{Path: "/products/1"})

		assert.Nil(t, res)
		assert.True(t, errors.Is(err, ErrNotAuthenticated))
		assert.Equal(t, KindNotAuthenticated, KindOf(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(hits))
	})

	t.Run("Success Sends Bearer And Query", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get(HeaderRequestID))
			assert.Equal(t, "/user/stylist/weeklySchedule", r.URL.Path)
			assert.Equal(t, "06-01-2025", r.URL.Query().Get("start_date"))
			w.Write([]byte(`{"ok":true}`))
		})

		res, err := c.Do(context.Background(), Request{
			Path:  "/user/stylist/weeklySchedule",
			Query: url.Values{"start_date": {"06-01-2025"}},
			Token: "tok",
		})

		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.JSONEq(t, `{"ok":true}`, string(res.Data))
	})

	t.Run("Request ID Is Propagated From Context", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-42", r.Header.Get(HeaderRequestID))
			w.WriteHeader(http.StatusNoContent)
		})

		res, err := c.Do(WithRequestID(context.Background(), "req-42"), Request{Path: "x", Token: "tok"})

		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Empty(t, res.Data)
	})

	t.Run("Non 2xx Decodes Message", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"SKU already exists"}`))
		})

		res, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/products", Body: map[string]int{"a": 1}, Token: "tok"})

		require.Error(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, http.StatusConflict, res.Status)
		assert.Equal(t, KindHTTP, KindOf(err))
		assert.Equal(t, http.StatusConflict, StatusOf(err))
		assert.Equal(t, "SKU already exists", MessageOf(err))
	})

	t.Run("Non 2xx Without JSON Falls Back", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>boom</html>`))
		})

		_, err := c.Do(context.Background(), Request{Path: "/x", Token: "tok"})

		assert.Equal(t, "request failed", MessageOf(err))
	})

	t.Run("Success With Garbage Body Is A Decode Failure", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		res, err := c.Do(context.Background(), Request{Path: "/x", Token: "tok"})

		assert.Nil(t, res)
		assert.Equal(t, KindDecode, KindOf(err))
	})

	t.Run("Connection Failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		base := srv.URL
		srv.Close()

		c := New(Options{BaseURL: base}, nil)
		_, err := c.Do(context.Background(), Request{Path: "/x", Token: "tok"})

		assert.Equal(t, KindConnection, KindOf(err))
		assert.Equal(t, "connection failed", MessageOf(err))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, []byte("abc"), Truncate([]byte("abcdef"), 3))
	assert.Equal(t, []byte("ab"), Truncate([]byte("ab"), 3))
}
