package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcourt/entity"
)

// fileHeader builds a real *multipart.FileHeader by round-tripping a form.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(4 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestMediaUpload(t *testing.T) {
	var gotPreset, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(4 << 20); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		gotPreset = r.FormValue("upload_preset")
		if fhs := r.MultipartForm.File["file"]; len(fhs) > 0 {
			gotFilename = fhs[0].Filename
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/burger.png"}`))
	}))
	defer srv.Close()

	svc := NewMediaService("demo", "unsigned_preset")
	svc.BaseURL = srv.URL

	url, err := svc.Upload(fileHeader(t, "burger.png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.example.com/burger.png" {
		t.Errorf("url = %q", url)
	}
	if gotPreset != "unsigned_preset" {
		t.Errorf("upload_preset = %q", gotPreset)
	}
	if gotFilename != "burger.png" {
		t.Errorf("filename = %q", gotFilename)
	}
}

func TestMediaUploadTooLarge(t *testing.T) {
	svc := NewMediaService("demo", "unsigned_preset")
	big := fileHeader(t, "big.png", bytes.Repeat([]byte("x"), MaxUploadSize+1))

	if _, err := svc.Upload(big); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("err = %v, want size rejection", err)
	}
}

func TestMediaUploadHostFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid upload preset"}}`))
	}))
	defer srv.Close()

	svc := NewMediaService("demo", "bad_preset")
	svc.BaseURL = srv.URL

	_, err := svc.Upload(fileHeader(t, "burger.png", []byte("png-bytes")))
	var collab *entity.CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("err = %v, want CollaboratorError", err)
	}
	if !strings.Contains(collab.Error(), "Invalid upload preset") {
		t.Errorf("error = %q, want host message passed through", collab.Error())
	}
}

func TestMediaUploadUnconfigured(t *testing.T) {
	svc := NewMediaService("", "")
	_, err := svc.Upload(fileHeader(t, "burger.png", []byte("png-bytes")))
	var collab *entity.CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("err = %v, want CollaboratorError", err)
	}
}
