package datasource

import (
	"context"
	"fmt"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"rentroll/src/config"
	"rentroll/src/models"
	"rentroll/src/utils"
)

// GetObjectAPI is the part of the S3 client the source needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a rent roll CSV stored as an S3 (or S3-compatible) object.
type S3Source struct {
	client GetObjectAPI
	bucket string
	key    string
}

func NewS3Source(ctx context.Context, region string, cfg config.S3SourceConfig) (*S3Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3 bucket and key required")
	}
	if region == "" {
		region = "us-east-1"
	}
	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	// Static keys are meant for S3-compatible stores; AWS deployments use the default chain.
	if cfg.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3SourceWithClient(client, cfg.Bucket, cfg.Key), nil
}

func NewS3SourceWithClient(client GetObjectAPI, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

func (s *S3Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

func (s *S3Source) Load(ctx context.Context) ([]models.RentRollRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Name(), err)
	}
	defer out.Body.Close()

	records, err := utils.ParseRentRollCSV(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Name(), err)
	}
	return records, nil
}
