package config

import (
	"context"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// MinioClient stores generated report artifacts and uploaded utility bills.
	MinioClient *minio.Client

	ReportBucket = "greendesk-reports"
	UploadBucket = "greendesk-uploads"
)

// ConnectMinio initializes the MinIO client and ensures the buckets exist.
func ConnectMinio() {
	endpoint := getEnv("MINIO_ENDPOINT", "localhost:9000")
	accessKey := getEnv("MINIO_ACCESS_KEY", "minioadmin")
	secretKey := getEnv("MINIO_SECRET_KEY", "minioadmin")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if b := os.Getenv("MINIO_REPORT_BUCKET"); b != "" {
		ReportBucket = b
	}
	if b := os.Getenv("MINIO_UPLOAD_BUCKET"); b != "" {
		UploadBucket = b
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("❌ Failed to create MinIO client: %v", err)
	}
	MinioClient = client

	ctx := context.Background()
	for _, bucket := range []string{ReportBucket, UploadBucket} {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			log.Fatalf("❌ Failed to check bucket %s: %v", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				log.Fatalf("❌ Failed to create bucket %s: %v", bucket, err)
			}
			log.Printf("✅ Created bucket %s", bucket)
		}
	}

	log.Println("✅ MinIO connected:", endpoint)
}
