// Package source opens PGN archives from local files or S3, undoing
// zstd, bzip2 or gzip compression by file extension.
package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// S3API is the part of the S3 client used to fetch archives.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Option configures Open.
type Option func(*options)

type options struct {
	s3 S3API
}

// WithS3Client sets the client used for s3:// paths. Without it a client
// is built from the default AWS configuration chain.
func WithS3Client(c S3API) Option {
	return func(o *options) {
		o.s3 = c
	}
}

// Open returns a reader over the decompressed content at name. name is a
// local path or s3://bucket/key.
func Open(ctx context.Context, name string, opts ...Option) (io.ReadCloser, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		raw  io.ReadCloser
		base string
		err  error
	)
	switch {
	case strings.HasPrefix(name, "s3://"):
		raw, base, err = openS3(ctx, name, o.s3)
	case strings.Contains(name, "://"):
		return nil, fmt.Errorf("%s: %w", name, errors.ErrUnsupportedSource)
	default:
		raw, err = os.Open(name)
		base = name
	}
	if err != nil {
		return nil, err
	}

	rc, err := decompress(raw, path.Ext(base))
	if err != nil {
		raw.Close()
		return nil, errors.Wrapf(err, "open %s", name)
	}
	return rc, nil
}

func openS3(ctx context.Context, name string, client S3API) (io.ReadCloser, string, error) {
	u, err := url.Parse(name)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %v: %w", name, err, errors.ErrUnsupportedSource)
	}
	bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, "", fmt.Errorf("%s: want s3://bucket/key: %w", name, errors.ErrUnsupportedSource)
	}

	if client == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, "", errors.Wrap(err, "load aws config")
		}
		client = s3.NewFromConfig(cfg)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", errors.Wrapf(err, "get s3://%s/%s", bucket, key)
	}
	return out.Body, key, nil
}

// decompress wraps r according to a file extension.
func decompress(r io.ReadCloser, ext string) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return &stacked{Reader: dec, close: func() error {
			dec.Close()
			return r.Close()
		}}, nil
	case ".bz2":
		br, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, err
		}
		return &stacked{Reader: br, close: func() error {
			br.Close()
			return r.Close()
		}}, nil
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return &stacked{Reader: gz, close: func() error {
			gz.Close()
			return r.Close()
		}}, nil
	default:
		return r, nil
	}
}

// stacked closes a decompressor and the stream beneath it.
type stacked struct {
	io.Reader
	close func() error
}

func (s *stacked) Close() error {
	return s.close()
}
