package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/AhmedAli0123/books-by-karl/internal/storage"
)

type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type Client struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	http      *http.Client
}

// NewClient initializes an S3-compatible client (Cloudflare R2 in the
// current deployment).
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = false
	})

	return &Client{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		http:      &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

// PresignUpload creates a presigned PUT URL for direct upload.
func (c *Client) PresignUpload(ctx context.Context, objectKey, contentType string) (string, error) {
	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 15 * time.Minute
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

// PresignDownload creates a presigned GET URL for serving the object.
func (c *Client) PresignDownload(ctx context.Context, objectKey string) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 15 * time.Minute
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}

// DeleteObject removes an object from the bucket (cleanup after failed
// document writes).
func (c *Client) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("s3: delete object %s: %w", objectKey, err)
	}
	return nil
}

// Upload implements storage.Uploader: presign a PUT and stream the body to
// it. size MUST be set, the bucket rejects chunked uploads without it.
func (c *Client) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (storage.Upload, error) {
	objectKey := fmt.Sprintf("books/covers/%s%s", uuid.NewString(), path.Ext(filename))

	uploadURL, err := c.PresignUpload(ctx, objectKey, contentType)
	if err != nil {
		return storage.Upload{}, fmt.Errorf("generate presigned upload url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, r)
	if err != nil {
		return storage.Upload{}, fmt.Errorf("create put request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", strconv.FormatInt(size, 10))
	req.ContentLength = size // ensure no chunked encoding

	resp, err := c.http.Do(req)
	if err != nil {
		return storage.Upload{}, fmt.Errorf("put to bucket failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return storage.Upload{}, fmt.Errorf("bucket upload failed status=%d", resp.StatusCode)
	}

	downloadURL, err := c.PresignDownload(ctx, objectKey)
	if err != nil {
		return storage.Upload{}, fmt.Errorf("uploaded but failed to generate url: %w", err)
	}
	return storage.Upload{ID: objectKey, URL: downloadURL}, nil
}

// ResolveURL implements storage.URLResolver. The stored ID is the object
// key; presigned GETs expire, so the read path re-mints one per request.
func (c *Client) ResolveURL(ctx context.Context, id string) (string, error) {
	return c.PresignDownload(ctx, id)
}
