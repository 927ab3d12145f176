package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"foodcourt/entity"
)

// MaxUploadSize limits images to 2MB, matching the media host's free tier.
const MaxUploadSize = 2 << 20

// MediaService uploads images to a Cloudinary-style unsigned upload
// endpoint and returns the public URL. Failures of the host surface as a
// CollaboratorError; they are reported once and never retried.
type MediaService struct {
	CloudName    string
	UploadPreset string
	Client       *http.Client

	// BaseURL is overridable for tests; empty means the real host.
	BaseURL string
}

func NewMediaService(cloudName, uploadPreset string) *MediaService {
	return &MediaService{
		CloudName:    cloudName,
		UploadPreset: uploadPreset,
		Client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MediaService) endpoint() string {
	base := s.BaseURL
	if base == "" {
		base = "https://api.cloudinary.com/v1_1"
	}
	return fmt.Sprintf("%s/%s/image/upload", base, s.CloudName)
}

// Upload sends the image and returns its public URL.
func (s *MediaService) Upload(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", errors.New("file too large (max 2MB)")
	}
	if s.CloudName == "" || s.UploadPreset == "" {
		return "", &entity.CollaboratorError{Op: "media upload", Err: errors.New("media host not configured")}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", file.Filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", err
	}
	if err := w.WriteField("upload_preset", s.UploadPreset); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint(), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := s.Client.Do(req)
	if err != nil {
		return "", &entity.CollaboratorError{Op: "media upload", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		msg := apiErr.Error.Message
		if msg == "" {
			msg = res.Status
		}
		return "", &entity.CollaboratorError{Op: "media upload", Err: errors.New(msg)}
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", &entity.CollaboratorError{Op: "media upload", Err: err}
	}
	return out.SecureURL, nil
}
