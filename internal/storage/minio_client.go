package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"socialCPT/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64, contentType string) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	ObjectNameFromURL(imageURL string) (string, bool)
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       logrus.FieldLogger
}

func NewMinIOClient(ctx context.Context, cfg config.MinIO, log logrus.FieldLogger) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	m := &MinIOClient{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: publicBaseURL(cfg),
		log:       log,
	}

	if err := m.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.bucket, err)
	}

	m.log.WithField("bucket", m.bucket).Info("Created MinIO bucket")
	return nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			fileExt = exts[0]
		} else {
			fileExt = ".jpg"
		}
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(fileExt)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := objectKey(ownerID, fileExt, now)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"owner-id":          ownerID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return objectName, m.publicURL + "/" + m.bucket + "/" + objectName, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return fmt.Errorf("failed to delete from MinIO: %w", err)
	}
	return nil
}

// ObjectNameFromURL reports the object key behind imageURL when the URL
// points into this client's bucket.
func (m *MinIOClient) ObjectNameFromURL(imageURL string) (string, bool) {
	return objectNameFromURL(m.publicURL, m.bucket, imageURL)
}

func objectKey(ownerID, ext string, now time.Time) string {
	return fmt.Sprintf("images/%s/%d/%02d/%s%s",
		ownerID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		ext)
}

func objectNameFromURL(publicURL, bucket, imageURL string) (string, bool) {
	prefix := publicURL + "/" + bucket + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(imageURL, prefix)
	return name, name != ""
}

func publicBaseURL(cfg config.MinIO) string {
	if cfg.PublicURL != "" {
		return strings.TrimSuffix(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint
}
