package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadBytes_SignsAndDecodes(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/auto/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		got = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			got[k] = v[0]
		}
		f, _, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		data, _ := io.ReadAll(f)
		assert.Equal(t, "png-bytes", string(data))
		_, _ = io.WriteString(w, `{"public_id":"hostelez/certificates/abc","secure_url":"https://res.example/abc.png","width":10,"height":20,"bytes":9}`)
	}))
	defer srv.Close()

	c := New("demo", "key", "secret", "hostelez")
	c.BaseURL = srv.URL
	c.Clock = clockwork.NewFakeClockAt(time.Unix(1700000000, 0))

	res, err := c.UploadBytes(context.Background(), "certificates", []byte("png-bytes"), "cert.png")
	require.NoError(t, err)
	assert.Equal(t, "https://res.example/abc.png", res.SecureURL)
	assert.Equal(t, 20, res.Height)

	assert.Equal(t, "hostelez/certificates", got["folder"])
	assert.Equal(t, "1700000000", got["timestamp"])
	sum := sha1.Sum([]byte("folder=hostelez/certificates&timestamp=1700000000secret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got["signature"])
}

func TestUpload_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid Signature"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New("demo", "key", "secret", "")
	c.BaseURL = srv.URL
	_, err := c.UploadDataURL(context.Background(), "profile", "data:image/png;base64,AAAA")
	assert.ErrorContains(t, err, "401")
}
