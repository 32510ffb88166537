// Package source opens schedule files from the local disk or S3, optionally
// gzip-compressed.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
)

const s3Scheme = "s3://"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidLocation = errors.New("invalid location")
)

// ObjectGetter is the part of the S3 client used to fetch schedules.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config selects the endpoint used for s3:// locations. Empty fields fall
// back to the AWS SDK defaults (environment, shared config).
type S3Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Opener struct {
	cfg    S3Config
	client ObjectGetter
	log    zerolog.Logger
}

func NewOpener(cfg S3Config, log zerolog.Logger) *Opener {
	return &Opener{cfg: cfg, log: log}
}

// WithClient makes the opener use c for s3:// locations instead of building
// a client from the AWS configuration.
func (o *Opener) WithClient(c ObjectGetter) *Opener {
	o.client = c
	return o
}

// Open returns a reader over the decoded contents of location, which is a
// file path or s3://bucket/key. A .gz suffix means the content is gzipped.
// Missing inputs yield an error wrapping ErrNotFound.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if strings.HasPrefix(location, s3Scheme) {
		rc, err = o.openS3(ctx, location)
	} else {
		rc, err = openFile(location)
	}
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(location, ".gz") {
		return rc, nil
	}
	zr, err := gzip.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decompressing %s: %w", location, err)
	}
	o.log.Debug().Str("location", location).Msg("reading gzip stream")
	return &gzipReadCloser{Reader: zr, under: rc}, nil
}

func openFile(path string) (io.ReadCloser, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s %w", path, ErrNotFound)
		}
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ParseS3 splits s3://bucket/key into its parts.
func ParseS3(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %s is not an s3:// location", ErrInvalidLocation, location)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s must name a bucket and a key", ErrInvalidLocation, location)
	}
	return bucket, key, nil
}

func (o *Opener) openS3(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3(location)
	if err != nil {
		return nil, err
	}
	client, err := o.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	o.log.Debug().Str("bucket", bucket).Str("key", key).Msg("fetching schedule from S3")
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		var ae smithy.APIError
		switch {
		case errors.As(err, &noKey), errors.As(err, &noBucket):
			return nil, fmt.Errorf("%s %w", location, ErrNotFound)
		case errors.As(err, &ae) && ae.ErrorCode() == "NotFound":
			return nil, fmt.Errorf("%s %w", location, ErrNotFound)
		default:
			return nil, fmt.Errorf("fetching %s: %w", location, err)
		}
	}
	return out.Body, nil
}

func (o *Opener) s3Client(ctx context.Context) (ObjectGetter, error) {
	if o.client != nil {
		return o.client, nil
	}

	var optFns []func(*config.LoadOptions) error
	if o.cfg.Region != "" {
		optFns = append(optFns, config.WithRegion(o.cfg.Region))
	}
	if o.cfg.AccessKeyID != "" || o.cfg.SecretAccessKey != "" {
		if o.cfg.AccessKeyID == "" || o.cfg.SecretAccessKey == "" {
			return nil, errors.New("S3 access key id and secret access key must be set together")
		}
		optFns = append(optFns, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.cfg.AccessKeyID, o.cfg.SecretAccessKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("loading S3 configuration: %w", err)
	}
	o.client = s3.NewFromConfig(awsCfg, func(opts *s3.Options) {
		if o.cfg.Endpoint != "" {
			opts.BaseEndpoint = aws.String(o.cfg.Endpoint)
			opts.UsePathStyle = true
		}
	})
	return o.client, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	under io.Closer
}

func (g *gzipReadCloser) Close() error {
	zerr := g.Reader.Close()
	if err := g.under.Close(); err != nil {
		return err
	}
	return zerr
}
