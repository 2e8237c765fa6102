// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/staranto/vlctlgo/internal/aws"
)

// S3Source reads rows from an s3://bucket/key object.
type S3Source struct {
	Ctx    context.Context
	Bucket string
	Key    string
	Opts   ParseOptions

	size int64
}

// NewS3Source parses an s3://bucket/key spec.
func NewS3Source(ctx context.Context, spec string, opts ParseOptions) (*S3Source, error) {
	trimmed := strings.TrimPrefix(spec, "s3://")
	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 spec %q, want s3://bucket/key", spec)
	}

	return &S3Source{
		Ctx:    ctx,
		Bucket: bucket,
		Key:    key,
		Opts:   opts,
		size:   -1,
	}, nil
}

func (s *S3Source) Rows() ([]Row, error) {
	cfg, err := awsx.LoadAWSConfig(s.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := awsx.NewS3(cfg)

	out, err := client.GetObject(s.Ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	s.size = int64(len(data))
	log.Debugf("fetched s3://%s/%s: %d bytes", s.Bucket, s.Key, s.size)

	opts := s.Opts
	if opts.Format == "" || opts.Format == "auto" {
		if strings.HasSuffix(s.Key, ".jsonl") || strings.HasSuffix(s.Key, ".ndjson") {
			opts.Format = "jsonl"
		}
	}

	return ParseRows(data, opts)
}

func (s *S3Source) Size() int64 {
	return s.size
}

func (s *S3Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

func (s *S3Source) Type() string {
	return "s3"
}
