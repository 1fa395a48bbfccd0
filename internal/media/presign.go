package media

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/logger"
)

// Resolver turns whatever the backend stored for a photo into a URL the
// browser can load.
type Resolver interface {
	Resolve(ctx context.Context, ref string) string
}

// PassThrough returns refs unchanged.
type PassThrough struct{}

func (PassThrough) Resolve(_ context.Context, ref string) string { return ref }

type S3Options struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint is set for S3-compatible stores; it switches to path-style
	// addressing.
	Endpoint string
	TTL      time.Duration
}

// Presigner signs GET URLs for bare object keys. Absolute URLs and
// site-relative paths are passed through.
type Presigner struct {
	bucket  string
	ttl     time.Duration
	presign *s3.PresignClient
	log     *zap.Logger
}

func NewPresigner(opts S3Options, log *zap.Logger) (*Presigner, error) {
	if opts.Bucket == "" {
		return nil, errors.New("media: bucket is required")
	}
	if opts.TTL <= 0 {
		opts.TTL = 15 * time.Minute
	}

	s3opts := s3.Options{
		Region: opts.Region,
	}
	if opts.AccessKey != "" {
		s3opts.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
	}
	if opts.Endpoint != "" {
		s3opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3opts.UsePathStyle = true
	}

	return &Presigner{
		bucket:  opts.Bucket,
		ttl:     opts.TTL,
		presign: s3.NewPresignClient(s3.New(s3opts)),
		log:     logger.OrNop(log),
	}, nil
}

func (p *Presigner) Resolve(ctx context.Context, ref string) string {
	if ref == "" || isLink(ref) {
		return ref
	}

	req, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(ref),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		p.log.Warn("presign failed", zap.String("key", ref), zap.Error(err))
		return ref
	}
	return req.URL
}

// isLink reports refs that are already addressable: absolute URLs and
// site paths. Everything else is an object key in the bucket.
func isLink(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "/")
}
