package s3

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"ynaut/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Client struct {
	s3Client  *s3.S3
	bucket    string
	cdnHost   string
	accessKey string
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO and S3-compatible stores
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client:  s3.New(sess),
		bucket:    cfg.S3BucketName,
		cdnHost:   cfg.CDNHost,
		accessKey: cfg.AWSAccessKeyID,
	}, nil
}

// MediaKey builds an object key namespaced by resource type, uploader and
// upload time, e.g. "posts/42_1719847200.jpg".
func MediaKey(resource, userID, contentType string) string {
	return fmt.Sprintf("%s/%s_%d.%s", resource, userID, time.Now().Unix(), extFor(contentType))
}

func extFor(contentType string) string {
	if strings.HasPrefix(contentType, "image") {
		return "jpg"
	}
	return "mp4"
}

// UploadBase64 decodes payload and stores it under key, returning the public
// URL of the object.
func (c *Client) UploadBase64(key, payload, contentType string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode media payload: %w", err)
	}
	return c.upload(key, bytes.NewReader(data), contentType)
}

func (c *Client) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return c.upload(key, bytes.NewReader(buf.Bytes()), contentType)
}

func (c *Client) upload(key string, body io.ReadSeeker, contentType string) (string, error) {
	_, err := c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.PublicURL(key), nil
}

// PublicURL renders the CDN template for key. With a CDN host configured the
// URL combines the account identifier and the bucket namespace; otherwise it
// falls back to the store endpoint or the plain S3 URL.
func (c *Client) PublicURL(key string) string {
	if c.cdnHost != "" {
		return fmt.Sprintf("https://%s/projects/%s/bucket/%s", c.cdnHost, c.accessKey, key)
	}

	endpoint := aws.StringValue(c.s3Client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if c.s3Client.Config.DisableSSL != nil && *c.s3Client.Config.DisableSSL {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, c.bucket, key)
	}

	region := aws.StringValue(c.s3Client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, region, key)
}

func (c *Client) DeleteFile(key string) error {
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}
