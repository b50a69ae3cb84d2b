package assets_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AhmedAli0123/books-by-karl/internal/api/handlers/assets"
	"github.com/AhmedAli0123/books-by-karl/internal/storage"
)

type fakeUploader struct {
	filename string
	body     string
	err      error
}

func (f *fakeUploader) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (storage.Upload, error) {
	if f.err != nil {
		return storage.Upload{}, f.err
	}
	f.filename = filename
	raw, _ := io.ReadAll(r)
	f.body = string(raw)
	return storage.Upload{ID: "image-up1-10x10-png", URL: "https://cdn.test/up1.png"}, nil
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(fw, content)
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	up := &fakeUploader{}
	h := assets.NewHandler(up)

	body, ct := multipartBody(t, "file", "cover.png", "png-bytes")
	req := httptest.NewRequest("POST", "/admin/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["url"] != "https://cdn.test/up1.png" || out["id"] == "" {
		t.Errorf("response = %v", out)
	}
	if up.filename != "cover.png" || up.body != "png-bytes" {
		t.Errorf("uploader got filename=%q body=%q", up.filename, up.body)
	}
}

func TestUploadMissingFile(t *testing.T) {
	h := assets.NewHandler(&fakeUploader{})

	body, ct := multipartBody(t, "wrong-field", "cover.png", "x")
	req := httptest.NewRequest("POST", "/admin/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["error"] == "" {
		t.Errorf("failure body must carry error key: %v", out)
	}
}

func TestUploadBackendFailure(t *testing.T) {
	h := assets.NewHandler(&fakeUploader{err: errors.New("bucket unreachable")})

	body, ct := multipartBody(t, "file", "cover.png", "x")
	req := httptest.NewRequest("POST", "/admin/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d", rec.Code)
	}
}
