package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/minio/minio-go/v7"
)

// StorageService wraps the MinIO client for report artifacts and
// utility bill uploads
type StorageService struct{}

// NewStorageService creates a new storage service
func NewStorageService() *StorageService {
	return &StorageService{}
}

// PutReport stores a generated report artifact and returns its object key
func (s *StorageService) PutReport(ctx context.Context, objectKey string, payload []byte, contentType string) error {
	_, err := config.MinioClient.PutObject(
		ctx,
		config.ReportBucket,
		objectKey,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		log.Printf("[storage] failed to store report %s: %v", objectKey, err)
		return fmt.Errorf("failed to store report: %w", err)
	}

	log.Printf("[storage] stored report %s (%d bytes)", objectKey, len(payload))
	return nil
}

// GetReport fetches a stored report artifact
func (s *StorageService) GetReport(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := config.MinioClient.GetObject(ctx, config.ReportBucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		log.Printf("[storage] failed to get report %s: %v", objectKey, err)
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer obj.Close()

	payload, err := io.ReadAll(obj)
	if err != nil {
		log.Printf("[storage] failed to read report %s: %v", objectKey, err)
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return payload, nil
}

// DeleteReport removes a stored report artifact
func (s *StorageService) DeleteReport(ctx context.Context, objectKey string) error {
	if err := config.MinioClient.RemoveObject(ctx, config.ReportBucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("[storage] failed to delete report %s: %v", objectKey, err)
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// PresignReportURL generates a temporary download URL for a report,
// forcing an attachment disposition with the given filename
func (s *StorageService) PresignReportURL(ctx context.Context, objectKey, filename string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	presigned, err := config.MinioClient.PresignedGetObject(ctx, config.ReportBucket, objectKey, expiry, reqParams)
	if err != nil {
		log.Printf("[storage] failed to presign report %s: %v", objectKey, err)
		return "", fmt.Errorf("failed to presign report url: %w", err)
	}
	return presigned.String(), nil
}

// PutUpload stores an uploaded utility bill image/PDF
func (s *StorageService) PutUpload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := config.MinioClient.PutObject(
		ctx,
		config.UploadBucket,
		objectKey,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		log.Printf("[storage] failed to store upload %s: %v", objectKey, err)
		return fmt.Errorf("failed to store upload: %w", err)
	}

	log.Printf("[storage] stored upload %s", objectKey)
	return nil
}

// PresignUploadURL generates a temporary view URL for an uploaded bill
func (s *StorageService) PresignUploadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presigned, err := config.MinioClient.PresignedGetObject(ctx, config.UploadBucket, objectKey, expiry, nil)
	if err != nil {
		log.Printf("[storage] failed to presign upload %s: %v", objectKey, err)
		return "", fmt.Errorf("failed to presign upload url: %w", err)
	}
	return presigned.String(), nil
}

// Global instance
var storageService *StorageService

// GetStorageService returns the global storage service instance
func GetStorageService() *StorageService {
	if storageService == nil {
		storageService = NewStorageService()
	}
	return storageService
}
