// Package storage puts site images on an S3-compatible bucket, re-encoding
// them as WebP on the way in.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

const (
	MaxFileSize = 5 << 20 // 5 MiB, same cap the old uploader enforced
	maxWidth    = 1920
	webpQuality = 80
)

var validCategories = map[string]bool{
	"hero":    true,
	"service": true,
	"gallery": true,
	"logo":    true,
	"general": true,
}

func IsValidCategory(category string) bool {
	return validCategories[category]
}

// ValidateUpload rejects non-images and oversized files before any byte
// reaches the bucket.
func ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return httperr.ErrBusiness("invalid_file_type")
	}
	if size <= 0 || size > MaxFileSize {
		return httperr.ErrBusiness("file_too_large")
	}
	return nil
}

type ImageStore struct {
	client   *s3.Client
	bucket   string
	endpoint string
	logger   *zap.Logger
}

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func NewImageStore(cfg Config, logger *zap.Logger) *ImageStore {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &ImageStore{
		client:   s3.New(opts),
		bucket:   cfg.Bucket,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		logger:   logger.With(zap.String("component", "image_store")),
	}
}

type UploadInput struct {
	Data        []byte
	FileName    string
	ContentType string
	Category    string
}

type UploadResult struct {
	Key         string
	Size        int64
	ContentType string
	URL         string
}

// Upload validates, converts to WebP when the payload decodes as an image
// we know, and puts the object under <category>/<millis>-<rand>-<name>.
func (s *ImageStore) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if err := ValidateUpload(in.ContentType, int64(len(in.Data))); err != nil {
		return nil, err
	}
	if !IsValidCategory(in.Category) {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	data := in.Data
	contentType := in.ContentType
	name := sanitizeName(in.FileName)

	if converted, ok := reencodeWebP(in.Data); ok {
		data = converted
		contentType = "image/webp"
		name = trimExtension(name) + ".webp"
	}

	key := fmt.Sprintf("%s/%d-%s-%s",
		in.Category,
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		name,
	)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("image uploaded",
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)

	return &UploadResult{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
		URL:         s.PublicURL(key),
	}, nil
}

func (s *ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL assumes a public-read bucket behind the configured endpoint.
func (s *ImageStore) PublicURL(key string) string {
	if s.endpoint == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
}

// reencodeWebP shrinks wide images and converts decodable payloads to WebP.
// Payloads we cannot decode are stored untouched.
func reencodeWebP(data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth {
		height := bounds.Dy() * maxWidth / bounds.Dx()
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "image"
	}
	return name
}

func trimExtension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
