package imaging_test

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"artesania/internal/imaging"
)

func TestRemoveBackgroundSendsVendorContract(t *testing.T) {
	var gotKey, gotB64, gotSize string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotB64 = r.FormValue("image_file_b64")
		gotSize = r.FormValue("size")
		_, _ = w.Write([]byte("processed"))
	}))
	defer srv.Close()

	c := imaging.NewClient(srv.URL, "test-key")
	out, err := c.RemoveBackground([]byte("original"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "processed" {
		t.Fatalf("got %q", out)
	}
	if gotKey != "test-key" || gotSize != "auto" {
		t.Fatalf("bad request fields: key=%q size=%q", gotKey, gotSize)
	}
	if gotB64 != base64.StdEncoding.EncodeToString([]byte("original")) {
		t.Fatalf("image not base64 encoded: %q", gotB64)
	}
}

func TestProcessAllKeepsOriginalOnFailure(t *testing.T) {
	n := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		if n == 1 {
			http.Error(w, `{"errors":[{"title":"rate limit"}]}`, http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("clean"))
	}))
	defer srv.Close()

	c := imaging.NewClient(srv.URL, "k")
	out, err := c.ProcessAll([][]byte{[]byte("first"), []byte("second")})
	if err != nil {
		t.Fatal(err)
	}
	if string(out[0]) != "first" {
		t.Fatalf("failed image should keep original bytes, got %q", out[0])
	}
	if string(out[1]) != "clean" {
		t.Fatalf("got %q", out[1])
	}
}

func TestProcessAllErrsOnlyWhenEveryImageFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := imaging.NewClient(srv.URL, "k")
	if _, err := c.ProcessAll([][]byte{[]byte("a"), []byte("b")}); !errors.Is(err, imaging.ErrAllImagesFailed) {
		t.Fatalf("want ErrAllImagesFailed, got %v", err)
	}
}

func TestProcessAllNoKeyIsNoOp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("must not call the API without a key")
	}))
	defer srv.Close()

	c := imaging.NewClient(srv.URL, "")
	imgs := [][]byte{[]byte("a")}
	out, err := c.ProcessAll(imgs)
	if err != nil {
		t.Fatal(err)
	}
	if string(out[0]) != "a" {
		t.Fatalf("got %q", out[0])
	}
}
