package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testLogger() *logger.Logger {
	return logger.NewWithOutput(io.Discard)
}

func TestRequest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":[{"_id":"c1"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), nil)
	raw, err := c.Get(context.Background(), "/api/clientes")

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"_id":"c1"}]}`, string(raw))
}

func TestRequest_BearerTokenInjected(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), staticToken("tok-123"))
	_, err := c.Get(context.Background(), "/api/clientes")

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRequest_EmptyTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), staticToken(""))
	_, err := c.Get(context.Background(), "/api/clientes")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequest_NonOKBecomesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Contrato no encontrado"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), nil)
	_, err := c.Get(context.Background(), "/api/contratos/nope")

	tErr, ok := IsTransport(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, tErr.StatusCode)
	assert.Equal(t, "Contrato no encontrado", tErr.Message)
	assert.False(t, IsNetwork(err))
}

func TestRequest_ServerMessageKeyVariants(t *testing.T) {
	for body, want := range map[string]string{
		`{"error":"boom"}`:   "boom",
		`{"message":"boom"}`: "boom",
		`{"mensaje":"boom"}`: "boom",
		`not json at all`:    "",
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(body))
		}))

		c := New(srv.URL, testLogger(), nil)
		_, err := c.Get(context.Background(), "/x")
		srv.Close()

		tErr, ok := IsTransport(err)
		require.True(t, ok, "body: %s", body)
		assert.Equal(t, want, tErr.Message, "body: %s", body)
	}
}

func TestRequest_ConnectionFailureBecomesNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, testLogger(), nil)
	_, err := c.Get(context.Background(), "/api/clientes")

	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	_, isTransport := IsTransport(err)
	assert.False(t, isTransport)
}

func TestRequest_TimeoutBecomesNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	c := New(srv.URL, testLogger(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "/api/clientes")

	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestRequest_BodyMarshalling(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"new"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), nil)
	_, err := c.Post(context.Background(), "/api/clientes", map[string]interface{}{"nombre": "Ana"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Ana"}`, gotBody)
}
