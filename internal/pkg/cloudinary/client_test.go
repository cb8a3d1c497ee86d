package cloudinary

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	c := New("demo-cloud", "key123", "secret456", "lostfound")
	c.baseURL = server.URL
	c.httpClient = server.Client()
	return c
}

func TestUploadBytes(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "key123", r.FormValue("api_key"))
		assert.Equal(t, "lostfound", r.FormValue("folder"))
		assert.NotEmpty(t, r.FormValue("timestamp"))
		assert.NotEmpty(t, r.FormValue("signature"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "card.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"public_id":"lostfound/abc","secure_url":"https://res.example/abc.jpg","format":"jpg","width":640,"height":480,"bytes":1234}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	result, err := client.UploadBytes(context.Background(), []byte("fake-jpeg-bytes"), "card.jpg")
	require.NoError(t, err)

	assert.Equal(t, "/v1_1/demo-cloud/image/upload", gotPath)
	assert.Equal(t, "lostfound/abc", result.PublicID)
	assert.Equal(t, "https://res.example/abc.jpg", result.SecureURL)
	assert.Equal(t, 640, result.Width)
	assert.Equal(t, 1234, result.Bytes)
}

func TestUploadBase64(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "data:image/png;base64,aGVsbG8=", r.FormValue("file"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"public_id":"lostfound/xyz","secure_url":"https://res.example/xyz.png"}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	result, err := client.UploadBase64(context.Background(), "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "lostfound/xyz", result.PublicID)
}

func TestUpload_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Invalid API key"}}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.UploadBytes(context.Background(), []byte("x"), "x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed (401)")
}

func TestSign(t *testing.T) {
	client := New("demo-cloud", "key123", "secret456", "lostfound")

	params := map[string]string{
		"timestamp": "1724800000",
		"folder":    "lostfound",
		"api_key":   "key123", // excluded from the signature
	}

	want := fmt.Sprintf("%x", sha1.Sum([]byte("folder=lostfound&timestamp=1724800000secret456")))
	assert.Equal(t, want, client.sign(params))
}
