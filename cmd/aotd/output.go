package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
	"google.golang.org/api/option"

	"github.com/albumoftheday/aotd/engine/layout"
	"github.com/albumoftheday/aotd/engine/storage"
	"github.com/albumoftheday/aotd/pkg/env"
)

var (
	output     string
	layoutPath string
)

// sink is where generated files go: a bucket (or directory) and an object prefix.
type sink struct {
	client storage.Client
	bucket string
	prefix string
	close  func() error
}

func (s *sink) save(ctx context.Context, name string, data []byte) error {
	objectName := path.Join(s.prefix, name)
	if err := s.client.SaveBytes(ctx, s.bucket, objectName, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", objectName, err)
	}
	logrus.WithFields(logrus.Fields{"bucket": s.bucket, "object": objectName}).Info("Saved image")
	return nil
}

// openSink resolves the --output flag. "gs://bucket/prefix" writes to Cloud Storage,
// anything else is a local directory.
func openSink(ctx context.Context) (*sink, error) {
	target := output
	if target == "" {
		target = env.StringVariable("AOTD_OUTPUT", ".")
	}
	retries := uint64(env.IntVariable("AOTD_UPLOAD_RETRIES", 4))

	if !strings.HasPrefix(target, "gs://") {
		return &sink{
			client: storage.NewLocal(),
			bucket: target,
			close:  func() error { return nil },
		}, nil
	}

	bucket, prefix, _ := strings.Cut(strings.TrimPrefix(target, "gs://"), "/")
	if bucket == "" {
		return nil, fmt.Errorf("missing bucket in output %q", target)
	}
	var options []option.ClientOption
	if credentials := env.StringVariable("AOTD_GCS_CREDENTIALS", ""); credentials != "" {
		options = append(options, option.WithCredentialsFile(credentials))
	}
	client, err := gcs.NewClient(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &sink{
		client: storage.WithRetry(storage.NewGCS(client), time.Second/2, retries),
		bucket: bucket,
		prefix: prefix,
		close:  client.Close,
	}, nil
}

func loadGeometry() (layout.Geometry, error) {
	file := layoutPath
	if file == "" {
		file = env.StringVariable("AOTD_LAYOUT_FILE", "")
	}
	if file == "" {
		return layout.Default(), nil
	}
	return layout.Load(file)
}

func decodeImageFile(filePath string) (image.Image, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}
	return img, nil
}
