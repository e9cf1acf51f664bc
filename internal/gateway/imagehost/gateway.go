package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"

	"garmentflow/internal/gateway/transport"
	"garmentflow/internal/pkg/config"
	"garmentflow/internal/service/product"
)

const (
	serviceName = "image-host"

	uploadPath = "/1/upload"
	formField  = "image"
)

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
}

type ImageHostGateway struct {
	executor executor
	endpoint string
}

func New(client transport.HTTPClient, cfg *config.ImageHost) *ImageHostGateway {
	query := url.Values{}
	query.Set("key", cfg.APIKey)

	return &ImageHostGateway{
		executor: transport.NewExecutor(serviceName, client),
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + uploadPath + "?" + query.Encode(),
	}
}

// Upload отправляет изображение multipart формой и возвращает публичный URL.
// Тело читается один раз, чтобы повторить запрос при ретрае.
func (g *ImageHostGateway) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	body, contentType, err := buildForm(filename, image)
	if err != nil {
		return "", fmt.Errorf("gateway image host, build form: %w", err)
	}

	var resp uploadResponse
	err = g.executor.Do(ctx, "Upload",
		func(ctx context.Context) (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", contentType)
			return req, nil
		},
		func(r *http.Response) error {
			if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
				return fmt.Errorf("decode upload response: %w", err)
			}
			return nil
		},
	)
	if err != nil {
		switch {
		case transport.IsRetryable(err):
			return "", fmt.Errorf("%w: %w", product.ErrUpstreamUnavailable, err)
		case transport.IsStatus(err, http.StatusBadRequest):
			return "", fmt.Errorf("%w: image rejected by host: %w", product.ErrValidation, err)
		default:
			return "", fmt.Errorf("gateway image host, upload %s: %w", filename, err)
		}
	}

	imageURL := resp.Data.DisplayURL
	if imageURL == "" {
		imageURL = resp.Data.URL
	}
	if !resp.Success || imageURL == "" {
		return "", fmt.Errorf("%w: image host returned no url", product.ErrUpstreamUnavailable)
	}

	return imageURL, nil
}

func buildForm(filename string, image io.Reader) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(formField, path.Base(filename))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
