package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProfilePictureMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload/card/abc/profile-picture", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, header, err := r.FormFile("profilePicture")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "cropped.jpg", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"profilePicture": "https://cdn.example.com/p.jpg",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	url, err := c.UploadProfilePicture(context.Background(), "abc", []byte("jpeg-bytes"), "cropped.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/p.jpg", url)
}

func TestUploadBannerPictureAltResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"slot field", `{"bannerPicture": "https://cdn.example.com/b.jpg"}`},
		{"url field", `{"url": "https://cdn.example.com/b.jpg"}`},
		{"imageUrl field", `{"imageUrl": "https://cdn.example.com/b.jpg"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, "tok")
			url, err := c.UploadBannerPicture(context.Background(), "abc", []byte("x"), "b.jpg")
			require.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/b.jpg", url)
		})
	}
}

func TestUploadFailureReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unsupported image format"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.UploadProfilePicture(context.Background(), "abc", []byte("x"), "p.jpg")
	require.Error(t, err)
	assert.Equal(t, "Unsupported image format", err.Error())
}

func TestDeleteBannerPicture(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	require.NoError(t, c.DeleteBannerPicture(context.Background(), "abc"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/upload/card/abc/banner-picture", gotPath)
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	// Missing file means no session, not an error
	tok, err := LoadToken(path)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, SaveToken(path, "tok-123"))
	tok, err = LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)

	require.NoError(t, ClearToken(path))
	tok, err = LoadToken(path)
	require.NoError(t, err)
	assert.Empty(t, tok)

	// Logout is idempotent
	require.NoError(t, ClearToken(path))
}
