package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lukman83/shopfront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Username != "emilys" || creds.Password != "emilyspass" {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"message": "Invalid credentials"}`)
			return
		}
		io.WriteString(w, `{"id": 1, "username": "emilys", "accessToken": "opaque-token-value"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	sess, err := c.Login(context.Background(), models.Credentials{Username: "emilys", Password: "emilyspass"})
	require.NoError(t, err)
	assert.Equal(t, "opaque-token-value", sess.Token)
	assert.Equal(t, "emilys", sess.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message": "Invalid credentials"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	_, err := c.Login(context.Background(), models.Credentials{Username: "x", Password: "y"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id": 1, "username": "emilys"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	_, err := c.Login(context.Background(), models.Credentials{Username: "emilys", Password: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestStoreFor(t *testing.T) {
	assert.IsType(t, &FileStore{}, StoreFor(true, "/tmp/token"))
	assert.IsType(t, &MemStore{}, StoreFor(false, "/tmp/token"))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := &FileStore{Path: path}

	require.NoError(t, s.Save("opaque-token-value"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token-value", token)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.Error(t, err)

	// Clearing again is fine.
	require.NoError(t, s.Clear())
}

func TestMemStore(t *testing.T) {
	s := &MemStore{}

	_, err := s.Load()
	assert.Error(t, err)

	require.NoError(t, s.Save("tok"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.Error(t, err)
}
