package s3mark

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tcnksm/go-httpstat"
)

// S3Client adapts an S3-compatible endpoint to the StorageInterface.
type S3Client struct {
	delegate *s3.Client
}

// NewS3Client builds an S3 client for the configured endpoint using static
// credentials.
func NewS3Client(cfg *Config) (*S3Client, error) {
	customResolver := aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
		return aws.Endpoint{URL: cfg.Endpoint}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithEndpointResolver(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS SDK config: %w", err)
	}
	awsCfg.Region = cfg.Region

	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
	}
	// a 3-minute timeout for all S3 calls, including downloading the body
	awsCfg.HTTPClient = &http.Client{
		Timeout:   time.Second * 180,
		Transport: tr,
	}

	// custom endpoints don't generally work with the bucket in the host prefix
	delegate := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		options.UsePathStyle = true
	})

	return &S3Client{delegate: delegate}, nil
}

func (c *S3Client) PutObject(bucket string, key string, reader *bytes.Reader) (Breakdown, error) {
	var result httpstat.Result
	ctx := httpstat.WithHTTPStat(context.TODO(), &result)

	_, err := c.delegate.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   reader,
	})
	return breakdown(result), err
}

func (c *S3Client) GetObject(bucket string, key string) (Breakdown, io.ReadCloser, error) {
	var result httpstat.Result
	ctx := httpstat.WithHTTPStat(context.TODO(), &result)

	resp, err := c.delegate.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return breakdown(result), nil, err
	}
	return breakdown(result), resp.Body, nil
}

func breakdown(result httpstat.Result) Breakdown {
	return Breakdown{
		DNSLookup:        result.DNSLookup,
		TCPConnection:    result.TCPConnection,
		TLSHandshake:     result.TLSHandshake,
		ServerProcessing: result.ServerProcessing,
	}
}
