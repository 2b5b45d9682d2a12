package transport_test

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

	"heroes/internal/domain"
	"heroes/internal/transport"
)

func TestDo_GetDecodesBody(t *testing.T) {
	var gotPath, gotQuery, gotID, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotID = r.Header.Get(transport.RequestIDHeader)
		gotCT = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`[{"id":1,"name":"A"},{"id":2,"name":"B"}]`))
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL+"/", srv.Client(), nil)

	var out []domain.Hero
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "api/heroes/?name=A", nil, &out))

	assert.Equal(t, []domain.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, out)
	assert.Equal(t, "/api/heroes/", gotPath)
	assert.Equal(t, "name=A", gotQuery)
	assert.NotEmpty(t, gotID)
	assert.Empty(t, gotCT, "GET without body must not declare a content type")
}

func TestDo_PostSendsJSON(t *testing.T) {
	var gotCT string
	var gotBody domain.Hero
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotCT = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"name":"Cat"}`))
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL, srv.Client(), nil)

	var out domain.Hero
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "api/heroes", domain.Hero{Name: "Cat"}, &out))

	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, domain.Hero{Name: "Cat"}, gotBody)
	assert.Equal(t, domain.Hero{ID: 9, Name: "Cat"}, out)
}

func TestDo_EmptyBodyLeavesOutUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL, srv.Client(), nil)

	out := json.RawMessage(`"sentinel"`)
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "api/heroes/1", nil, &out))
	assert.Equal(t, `"sentinel"`, string(out))
}

func TestDo_StatusErrorUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL, srv.Client(), nil)

	err := c.Do(context.Background(), http.MethodGet, "api/heroes/5", nil, nil)
	require.Error(t, err)

	var terr *transport.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, http.StatusNotFound, terr.StatusCode)
	assert.Equal(t, http.MethodGet, terr.Method)
	assert.Equal(t, srv.URL+"/api/heroes/5", terr.URL)
	assert.Equal(t, "Not Found", err.Error())
}

func TestDo_StatusErrorPrefersBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"name is required"}`))
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL, srv.Client(), nil)

	err := c.Do(context.Background(), http.MethodPost, "api/heroes", domain.Hero{}, nil)
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := transport.NewHTTP(base, nil, nil)

	err := c.Do(context.Background(), http.MethodGet, "api/heroes", nil, nil)
	require.Error(t, err)

	var terr *transport.Error
	require.True(t, errors.As(err, &terr))
	assert.Zero(t, terr.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
	assert.NotEmpty(t, terr.Message)
}

func TestDo_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL, srv.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, http.MethodGet, "api/heroes", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_BadJSONIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := transport.NewHTTP(srv.URL, srv.Client(), nil)

	var out domain.Hero
	err := c.Do(context.Background(), http.MethodGet, "api/heroes/1", nil, &out)
	require.Error(t, err)

	var terr *transport.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, http.StatusOK, terr.StatusCode)
}
