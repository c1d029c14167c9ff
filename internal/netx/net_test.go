package netx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestDoJSON(t *testing.T) {
	t.Run("post and decode", func(t *testing.T) {
		var gotMethod, gotCT string
		var got payload

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
			_, _ = w.Write([]byte(`{"name":"pong"}`))
		}))
		defer ts.Close()

		var out payload
		err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL, payload{Name: "ping"}, &out)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.Equal(t, "ping", got.Name)
		assert.Equal(t, "pong", out.Name)
	})

	t.Run("get without body", func(t *testing.T) {
		var gotLen int64 = -2
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLen = r.ContentLength
			_, _ = w.Write([]byte(`[]`))
		}))
		defer ts.Close()

		var out []payload
		require.NoError(t, DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, &out))
		assert.Equal(t, int64(0), gotLen)
		assert.Empty(t, out)
	})

	t.Run("non-2xx returns StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"detail":"slow down"}`))
		}))
		defer ts.Close()

		err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL, payload{}, nil)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusTooManyRequests, se.Code)
		assert.Equal(t, "7", se.Header.Get("Retry-After"))
		assert.JSONEq(t, `{"detail":"slow down"}`, string(se.Body))
		assert.Contains(t, se.Error(), "429")
	})

	t.Run("bad reply body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		var out payload
		err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, &out)
		assert.ErrorContains(t, err, "decode reply")
	})

	t.Run("bad URL", func(t *testing.T) {
		err := DoJSON(context.Background(), http.DefaultClient, http.MethodGet, "http://[::1", nil, nil)
		assert.Error(t, err)
	})

	t.Run("unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := ts.URL
		ts.Close()

		err := DoJSON(context.Background(), http.DefaultClient, http.MethodGet, url, nil, nil)
		assert.Error(t, err)
	})
}
