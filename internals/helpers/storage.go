package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxLogoWidth   = 512
	maxDocumentMB  = 10
	storageTimeout = 15 * time.Second
)

// UploadToSupabase envia bytes para um bucket do Supabase Storage via HTTP.
func UploadToSupabase(bucket, objectName, contentType string, body *bytes.Buffer) error {
	projectURL := strings.TrimRight(os.Getenv("SUPABASE_PROJECT_URL"), "/")
	secretKey := os.Getenv("SUPABASE_SECRET_KEY")
	if projectURL == "" || secretKey == "" {
		return fmt.Errorf("storage não configurado (SUPABASE_PROJECT_URL / SUPABASE_SECRET_KEY)")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", projectURL, bucket, url.PathEscape(objectName))
	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: storageTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("upload falhou: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload falhou (%d): %s", resp.StatusCode, string(msg))
	}
	return nil
}

// PublicStorageURL monta a URL pública de um objeto já enviado.
func PublicStorageURL(bucket, objectName string) string {
	projectURL := strings.TrimRight(os.Getenv("SUPABASE_PROJECT_URL"), "/")
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", projectURL, bucket, url.PathEscape(objectName))
}

// DeleteFromSupabase remove um objeto do bucket (best effort).
func DeleteFromSupabase(bucket, objectName string) error {
	projectURL := strings.TrimRight(os.Getenv("SUPABASE_PROJECT_URL"), "/")
	secretKey := os.Getenv("SUPABASE_SECRET_KEY")
	if projectURL == "" || secretKey == "" {
		return fmt.Errorf("storage não configurado")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", projectURL, bucket, url.PathEscape(objectName))
	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: storageTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete falhou (%d)", resp.StatusCode)
	}
	return nil
}

// UploadLogoWebp converte a imagem enviada para WebP (redimensionada) e sobe
// para o bucket "logos". Retorna URL pública + object key.
func UploadLogoWebp(folder string, fileHeader *multipart.FileHeader) (string, string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("falha ao abrir imagem: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("imagem inválida: %w", err)
	}

	// downscale mantendo proporção; logos não precisam de mais que 512px
	if img.Bounds().Dx() > maxLogoWidth {
		img = imaging.Resize(img, maxLogoWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return "", "", fmt.Errorf("falha ao converter para webp: %w", err)
	}

	objectName := fmt.Sprintf("%s/%s.webp", strings.Trim(folder, "/"), uuid.NewString())
	if err := UploadToSupabase("logos", objectName, "image/webp", buf); err != nil {
		return "", "", err
	}
	return PublicStorageURL("logos", objectName), objectName, nil
}

// UploadDocument sobe um arquivo bruto para o bucket "documents".
func UploadDocument(folder string, fileHeader *multipart.FileHeader) (string, string, error) {
	if fileHeader.Size > maxDocumentMB*1024*1024 {
		return "", "", fmt.Errorf("arquivo excede %dMB", maxDocumentMB)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("falha ao abrir arquivo: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", "", fmt.Errorf("falha ao ler arquivo: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext := filepath.Ext(fileHeader.Filename)
	objectName := fmt.Sprintf("%s/%s-%s%s",
		strings.Trim(folder, "/"),
		uuid.NewString()[:8],
		sanitizeFilename(strings.TrimSuffix(fileHeader.Filename, ext)),
		ext,
	)
	if err := UploadToSupabase("documents", objectName, contentType, buf); err != nil {
		return "", "", err
	}
	return PublicStorageURL("documents", objectName), objectName, nil
}

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	out := reUnsafe.ReplaceAllString(filename, "-")
	out = strings.Trim(out, "-")
	if out == "" {
		out = "arquivo"
	}
	return out
}
