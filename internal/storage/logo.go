// Package storage keeps shop logos in S3-compatible object storage.
// Uploads are normalized: decoded, downscaled and re-encoded as webp so
// the bucket never serves oversized originals.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/nerobarber/booking-api/internal/config"
	"github.com/nerobarber/booking-api/internal/httperr"
)

const (
	maxLogoWidth = 512
	webpQuality  = 80
)

type LogoStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewLogoStore returns nil when no bucket is configured; the handler
// treats a nil store as "uploads disabled".
func NewLogoStore(cfg *config.Config) *LogoStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &LogoStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

// UploadLogo stores the shop's logo and returns its public URL.
func (s *LogoStore) UploadLogo(
	ctx context.Context,
	barbershopID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	encoded, err := transcode(src)
	if err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}

	key := fmt.Sprintf("logos/%d.webp", barbershopID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put logo: %w", err)
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

func transcode(src image.Image) ([]byte, error) {
	bounds := src.Bounds()
	if bounds.Dx() > maxLogoWidth {
		h := bounds.Dy() * maxLogoWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxLogoWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
