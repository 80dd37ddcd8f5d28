package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestUploader(server *httptest.Server) *PhotoUploader {
	return &PhotoUploader{
		BaseURL:      server.URL,
		CloudName:    "test-cloud",
		UploadPreset: "test-preset",
		Client:       server.Client(),
	}
}

func TestUploadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1_1/test-cloud/image/upload" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "test-preset" {
			t.Errorf("upload_preset = %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("file part missing: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.example.com/photo.jpg"}`))
	}))
	defer server.Close()

	url, err := newTestUploader(server).Upload("photo.jpg", strings.NewReader("fake-image-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://res.example.com/photo.jpg" {
		t.Errorf("url = %q", url)
	}
}

func TestUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer server.Close()

	_, err := newTestUploader(server).Upload("photo.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error on 400 response")
	}
	if !strings.Contains(err.Error(), "Upload preset not found") {
		t.Errorf("error %q should carry the server message", err)
	}
}

func TestUploadMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	if _, err := newTestUploader(server).Upload("photo.jpg", strings.NewReader("x")); err == nil {
		t.Fatal("expected error when secure_url is absent")
	}
}
