package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/dementa/mjs/app/config"
)

// PhotoUploader posts images to the Cloudinary unsigned upload endpoint.
// The returned URL is embedded in guardian and student payloads, which is
// why uploads run before any record is created: a failed upload aborts
// the whole submission rather than leaving records pointing at missing
// images.
type PhotoUploader struct {
	BaseURL      string
	CloudName    string
	UploadPreset string
	Client       *http.Client
}

func NewPhotoUploader(cfg config.CloudinaryConfig) *PhotoUploader {
	return &PhotoUploader{
		BaseURL:      cfg.BaseURL,
		CloudName:    cfg.CloudName,
		UploadPreset: cfg.UploadPreset,
		Client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image and returns its hosted URL.
func (u *PhotoUploader) Upload(filename string, file io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", u.UploadPreset); err != nil {
		return "", err
	}
	if err := writer.WriteField("cloud_name", u.CloudName); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", u.BaseURL, u.CloudName)
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("photo upload failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("photo upload: invalid response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("photo upload failed: %s", msg)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("photo upload: response missing secure_url")
	}
	return parsed.SecureURL, nil
}
