// Package s3 implements the object-storage provider over any S3-compatible
// service (AWS S3, MinIO). The upload pipeline only sees the narrow
// Store/Delete contract; everything provider-specific stays here.
package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/vmss-tech/vmss-backend/internal/config"
	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/logger"
)

type Client struct {
	client *s3.Client
	cfg    config.S3Config
}

func New(ctx context.Context, cfg config.S3Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Path-style addressing for MinIO-compatible endpoints.
			o.UsePathStyle = true
		}
	})

	return &Client{client: client, cfg: cfg}, nil
}

// Store streams the upload to the bucket under the configured namespace
// and returns the provider-assigned reference.
func (c *Client) Store(ctx context.Context, upload domain.PendingUpload) (domain.StoredObject, error) {
	remoteId := uuid.New().String() + strings.ToLower(path.Ext(upload.Filename))
	key := c.objectKey(remoteId)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.cfg.Bucket),
		Key:           aws.String(key),
		Body:          upload.Data,
		ContentType:   aws.String(upload.ContentType),
		ContentLength: aws.Int64(upload.SizeBytes),
	})
	if err != nil {
		logger.Log.Error("s3 put failed", "key", key, "error", err)
		return domain.StoredObject{}, &internal_errors.ErrorWithStatusCode{Message: "Failed to store file", StatusCode: http.StatusInternalServerError}
	}

	return domain.StoredObject{RemoteId: remoteId, URL: c.objectURL(key)}, nil
}

// Delete removes a previously stored object. S3 DELETE is idempotent, so
// existence is checked first to preserve the 404 contract for unknown ids.
func (c *Client) Delete(ctx context.Context, remoteId string) error {
	key := c.objectKey(remoteId)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return internal_errors.NewNotFound("File not found")
		}
		logger.Log.Error("s3 head failed", "key", key, "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Failed to delete file", StatusCode: http.StatusInternalServerError}
	}

	_, err = c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Error("s3 delete failed", "key", key, "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Failed to delete file", StatusCode: http.StatusInternalServerError}
	}

	return nil
}

func (c *Client) objectKey(remoteId string) string {
	return path.Join(c.cfg.Folder, remoteId)
}

func (c *Client) objectURL(key string) string {
	if c.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.cfg.PublicBaseURL, "/"), c.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.cfg.Bucket, c.cfg.Region, key)
}
