// Package imaging calls the external background-removal API. The
// service is a black box: one call per uploaded image, any non-success
// response means "keep the original", and a product submission only
// fails when every image fails.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

var ErrAllImagesFailed = errors.New("no se pudo procesar ninguna imagen")

type Client struct {
	URL    string
	APIKey string
	HTTP   *http.Client
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		URL:    url,
		APIKey: apiKey,
		// explicit timeout: the request layer gives us none by default
		HTTP: &http.Client{Timeout: 20 * time.Second},
	}
}

// Enabled reports whether an API key is configured. Without one every
// image passes through untouched.
func (c *Client) Enabled() bool { return c.APIKey != "" }

// RemoveBackground sends one image and returns the processed bytes.
// The payload mirrors the vendor contract: multipart form with a
// base64 image field and auto sizing, API key in a header.
func (c *Client) RemoveBackground(img []byte) ([]byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("image_file_b64", base64.StdEncoding.EncodeToString(img)); err != nil {
		return nil, err
	}
	if err := w.WriteField("size", "auto"); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.URL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("removebg: status %d: %s", resp.StatusCode, msg)
	}
	return io.ReadAll(resp.Body)
}

// ProcessAll runs background removal over each image once. A failed
// image keeps its original bytes; the call errors only when every
// single image failed. With no API key configured it is a no-op.
func (c *Client) ProcessAll(images [][]byte) ([][]byte, error) {
	if !c.Enabled() || len(images) == 0 {
		return images, nil
	}
	out := make([][]byte, len(images))
	failures := 0
	for i, img := range images {
		processed, err := c.RemoveBackground(img)
		if err != nil {
			out[i] = img
			failures++
			continue
		}
		out[i] = processed
	}
	if failures == len(images) {
		return nil, ErrAllImagesFailed
	}
	return out, nil
}
