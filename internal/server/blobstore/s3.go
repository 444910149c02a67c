// Package blobstore keeps sealed envelopes as JSON objects in an
// S3-compatible bucket and addresses them by s3:// URI.
package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
)

// MaxEnvelopeSize bounds the encoded envelope Put will store and Get will read.
const MaxEnvelopeSize = 1 << 20

const scheme = "s3://"

// s3API is the subset of *s3.Client used by S3Store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}

	now = time.Now
)

// Options describe the bucket and credentials of the object store.
type Options struct {
	User         string
	Password     string
	Bucket       string
	Region       string
	BaseEndpoint string
}

type S3Store struct {
	client s3API
	bucket string
}

// NewS3Store builds a path-style S3 client, which is what MinIO expects.
func NewS3Store(ctx context.Context, opts Options) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.User, opts.Password, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Store{client: client, bucket: opts.Bucket}, nil
}

func newStorageKey() string {
	d := now().UTC()
	return fmt.Sprintf("envelopes/%d/%d/%d/%v.json", d.Year(), d.Month(), d.Day(), uuid.New())
}

// URI renders the address of key in the store's bucket.
func (s *S3Store) URI(key string) string {
	return scheme + s.bucket + "/" + key
}

// parseURI returns the object key of uri, rejecting other buckets.
func (s *S3Store) parseURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, scheme)
	if !ok {
		return "", fmt.Errorf("%w: unsupported uri %q", common.ErrValidation, uri)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || key == "" {
		return "", fmt.Errorf("%w: uri %q has no key", common.ErrValidation, uri)
	}
	if bucket != s.bucket {
		return "", fmt.Errorf("%w: unknown bucket %q", common.ErrValidation, bucket)
	}
	return key, nil
}

// Put stores env under a fresh key and returns its URI. Envelopes encoding
// to more than MaxEnvelopeSize bytes are rejected with common.ErrValidation.
func (s *S3Store) Put(ctx context.Context, env *cryptox.Envelope) (string, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	if len(body) > MaxEnvelopeSize {
		return "", fmt.Errorf("%w: envelope is %d bytes, limit %d", common.ErrValidation, len(body), MaxEnvelopeSize)
	}

	key := newStorageKey()
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}

	return s.URI(key), nil
}

// Get loads the envelope at uri. A missing object yields common.ErrorNotFound.
func (s *S3Store) Get(ctx context.Context, uri string) (*cryptox.Envelope, error) {
	key, err := s.parseURI(uri)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("s3 get: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxEnvelopeSize))
	if err != nil {
		return nil, fmt.Errorf("s3 read: %w", err)
	}

	env := &cryptox.Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, fmt.Errorf("s3 object %q is not an envelope: %w", key, err)
	}
	return env, nil
}
