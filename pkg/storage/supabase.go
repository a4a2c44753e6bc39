package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// SupabaseStore uploads photos to a Supabase storage bucket over its
// REST API and returns the public object URL.
type SupabaseStore struct {
	client     *resty.Client
	baseURL    string
	bucket     string
	serviceKey string
}

func NewSupabaseStore(baseURL, serviceKey, bucket string) *SupabaseStore {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetAuthToken(serviceKey)

	return &SupabaseStore{
		client:     client,
		baseURL:    baseURL,
		bucket:     bucket,
		serviceKey: serviceKey,
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	name := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), uuid.NewString())
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, name)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(uploadURL)
	if err != nil {
		return "", fmt.Errorf("storage: supabase upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("storage: supabase upload failed: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, name), nil
}
