package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the Cloudinary upload API root.
const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

// Client uploads media to Cloudinary with signed REST uploads.
type Client struct {
	CloudName string
	APIKey    string
	APISecret string
	// Folder is the root folder; uploads go to Folder/<sub>.
	Folder  string
	BaseURL string
	HTTP    *http.Client
	Clock   clockwork.Clock
}

func New(cloudName, apiKey, apiSecret, folder string) *Client {
	return &Client{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		Folder:    folder,
		BaseURL:   DefaultBaseURL,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Clock:     clockwork.NewRealClock(),
	}
}

// UploadResult is Cloudinary's answer to a successful upload.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int    `json:"bytes"`
}

// UploadDataURL uploads a "data:<mime>;base64,..." string into sub.
func (c *Client) UploadDataURL(ctx context.Context, sub, data string) (*UploadResult, error) {
	return c.upload(ctx, sub, func(w *multipart.Writer) error {
		return w.WriteField("file", data)
	})
}

// UploadBytes uploads raw file content into sub.
func (c *Client) UploadBytes(ctx context.Context, sub string, data []byte, filename string) (*UploadResult, error) {
	return c.upload(ctx, sub, func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, bytes.NewReader(data))
		return err
	})
}

func (c *Client) upload(ctx context.Context, sub string, writeFile func(*multipart.Writer) error) (*UploadResult, error) {
	params := map[string]string{
		"timestamp": strconv.FormatInt(c.Clock.Now().Unix(), 10),
		"api_key":   c.APIKey,
	}
	if folder := path.Join(c.Folder, sub); folder != "" && folder != "." {
		params["folder"] = folder
	}
	params["signature"] = c.sign(params)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return nil, errors.Wrap(err, "cloudinary: write form")
		}
	}
	if err := writeFile(w); err != nil {
		return nil, errors.Wrap(err, "cloudinary: write file")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "cloudinary: close form")
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/" + c.CloudName + "/auto/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary: create request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary: request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary: read response")
	}
	if resp.StatusCode >= 300 {
		return nil, errors.Errorf("cloudinary: upload failed (%d): %s", resp.StatusCode, body)
	}
	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "cloudinary: decode response")
	}
	return &result, nil
}

// sign computes the request signature. api_key, file and resource_type are not signed.
func (c *Client) sign(params map[string]string) string {
	skip := map[string]bool{"api_key": true, "file": true, "resource_type": true}
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		if !skip[k] && v != "" {
			pairs = append(pairs, k+"="+v)
		}
	}
	sort.Strings(pairs)
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.APISecret))
	return hex.EncodeToString(sum[:])
}
