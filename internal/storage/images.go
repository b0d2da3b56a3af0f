package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/louk-2005/AppointmentSite/internal/config"
)

// Target sizes for the image kinds the platform stores.
const (
	ProfileImageSize   = 300
	CatalogImageWidth  = 1080
	CatalogImageHeight = 945
)

// ImageStore uploads images to an S3-compatible bucket, downscaling
// and re-encoding them as webp first. Resizing is best-effort: when
// decoding fails the original bytes go up unchanged.
type ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &ImageStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

// Upload stores the image under a random key below prefix and returns
// its public URL.
func (st *ImageStore) Upload(
	ctx context.Context,
	prefix string,
	data []byte,
	maxWidth int,
	maxHeight int,
) (string, error) {

	body, contentType, ext := st.prepare(data, maxWidth, maxHeight)

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)

	_, err := st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return st.publicURL + "/" + key, nil
}

// prepare downscales to fit maxWidth x maxHeight and re-encodes as
// webp. Any failure falls back to the raw upload.
func (st *ImageStore) prepare(
	data []byte,
	maxWidth int,
	maxHeight int,
) (body []byte, contentType string, ext string) {

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Println("image decode failed, storing original:", err)
		return data, http.DetectContentType(data), ""
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth || h > maxHeight {
		scale := float64(maxWidth) / float64(w)
		if s := float64(maxHeight) / float64(h); s < scale {
			scale = s
		}
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		log.Println("webp encode failed, storing original:", err)
		return data, http.DetectContentType(data), ""
	}

	return buf.Bytes(), "image/webp", ".webp"
}
