package storage

import (
	"alcyxob/workout-tracker/internal/config"
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// s3PutAPI is the part of the S3 client used here.
type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Storage implements the ObjectStorage interface using an S3-compatible backend.
type s3Storage struct {
	client     s3PutAPI
	bucketName string
}

// NewS3Storage creates a new S3 storage service instance.
// It returns ErrStorageNotConfigured when no bucket is set.
func NewS3Storage(ctx context.Context, cfg config.S3Config) (ObjectStorage, error) {
	if cfg.BucketName == "" {
		return nil, ErrStorageNotConfigured
	}

	// Custom resolver for S3-compatible endpoints (like MinIO, DigitalOcean Spaces)
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fall back to the default AWS endpoint resolution
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, err
	}

	// Path-style addressing is required by most S3-compatible services
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Infof("S3 storage initialized for endpoint: %q, bucket: %s", cfg.Endpoint, cfg.BucketName)

	return newS3Storage(s3Client, cfg.BucketName), nil
}

func newS3Storage(client s3PutAPI, bucketName string) *s3Storage {
	return &s3Storage{
		client:     client,
		bucketName: bucketName,
	}
}

// PutObject uploads body to the configured bucket.
func (s *s3Storage) PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(objectKey),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Body:          bytes.NewReader(body),
	})
	if err != nil {
		log.Errorf("failed to put object '%s' into bucket '%s': %v", objectKey, s.bucketName, err)
		return err
	}

	log.Infof("stored object '%s' in bucket '%s' (%d bytes)", objectKey, s.bucketName, len(body))
	return nil
}
