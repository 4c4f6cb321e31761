package storage

import (
	"context"
	"errors"
	"time"

	"alcyxob/trainer-backoffice/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrEmptyObjectKey = errors.New("object key is empty")

// s3Storage implements ImageStorage using an S3-compatible backend.
type s3Storage struct {
	presignClient *s3.PresignClient
	bucketName    string
	expires       time.Duration
	logger        *zap.Logger
}

// NewS3Storage creates a new S3 image storage instance.
func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (ImageStorage, error) {
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	// Path-style addressing is required by most S3-compatible services (MinIO, Spaces)
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	expires := cfg.PresignExpiry
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	logger.Info("image storage initialized",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.BucketName),
	)

	return &s3Storage{
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
		expires:       expires,
		logger:        logger,
	}, nil
}

// PresignedImageURL creates a temporary URL for viewing (GET).
func (s *s3Storage) PresignedImageURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", ErrEmptyObjectKey
	}

	presignParams := &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}

	req, err := s.presignClient.PresignGetObject(ctx, presignParams, s3.WithPresignExpires(s.expires))
	if err != nil {
		s.logger.Error("failed to presign image URL", zap.String("key", objectKey), zap.Error(err))
		return "", err
	}

	return req.URL, nil
}
