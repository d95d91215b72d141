// Package storage persists content media: the daily-card images and the
// notification sounds the device downloads. Backed by a local directory in
// development and DigitalOcean Spaces in production.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// Asset kinds, used as path prefixes.
const (
	KindCardImage = "cards"
	KindSound     = "sounds"
)

// Storage stores one uploaded media asset and returns its public path.
type Storage interface {
	SaveAsset(fileHeader *multipart.FileHeader, kind string) (string, error)
}

type LocalStorage struct {
	mediaDir string
}

type SpacesStorage struct {
	client *s3.S3
	bucket string
	cdnURL string
}

func NewLocalStorage(mediaDir string) *LocalStorage {
	return &LocalStorage{mediaDir: mediaDir}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client: s3.New(sess),
		bucket: bucket,
		cdnURL: cdnURL,
	}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// normalizeFilename produces a unique, URL-safe name with a timestamp so
// re-uploads never clobber the asset a device may still be fetching.
func normalizeFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	baseName := strings.TrimSuffix(originalFilename, ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = unsafeChars.ReplaceAllString(baseName, "")
	if baseName == "" {
		baseName = "asset"
	}
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s%s", baseName, timestamp, ext)
}

func assetKey(kind, filename string) (string, error) {
	switch kind {
	case KindCardImage, KindSound:
		return fmt.Sprintf("media/%s/%s", kind, filename), nil
	default:
		return "", fmt.Errorf("unknown asset kind %q", kind)
	}
}

func (ls *LocalStorage) SaveAsset(fileHeader *multipart.FileHeader, kind string) (string, error) {
	name := normalizeFilename(fileHeader.Filename)
	key, err := assetKey(kind, name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(ls.mediaDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded asset: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save asset: %w", err)
	}

	log.Debug().Str("kind", kind).Str("path", path).Msg("asset stored locally")
	return path, nil
}

func (ss *SpacesStorage) SaveAsset(fileHeader *multipart.FileHeader, kind string) (string, error) {
	name := normalizeFilename(fileHeader.Filename)
	key, err := assetKey(kind, name)
	if err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded asset: %w", err)
	}
	defer src.Close()

	_, err = ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType(name)),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload asset to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(ss.cdnURL, "/"), key), nil
}

func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	default:
		return "application/octet-stream"
	}
}
