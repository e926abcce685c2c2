package blob

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	objectPrefix = "files/"
	metaName     = "Filename"
	metaFolder   = "Folder"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinioStore keeps every file at files/<ref>; name and folder live in the
// object's user metadata so moves never change the reference.
type MinioStore struct {
	client     *minioSDK.Client
	bucketName string
}

// NewMinioStore connects to MinIO and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioStore{client: client, bucketName: cfg.Bucket}, nil
}

func objectName(ref string) string {
	return objectPrefix + ref
}

func (s *MinioStore) Create(ctx context.Context, name, folder, contentType string, r io.Reader, size int64) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("file name cannot be empty")
	}
	ref := uuid.NewString()
	if err := s.put(ctx, ref, name, folder, contentType, r, size); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *MinioStore) Update(ctx context.Context, ref, name, contentType string, r io.Reader, size int64) error {
	info, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.put(ctx, ref, name, info.Folder, contentType, r, size)
}

func (s *MinioStore) Move(ctx context.Context, ref, folder string) error {
	info, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if info.Folder == folder {
		return nil
	}

	dst := minioSDK.CopyDestOptions{
		Bucket:          s.bucketName,
		Object:          objectName(ref),
		ReplaceMetadata: true,
		UserMetadata: map[string]string{
			metaName:   info.Name,
			metaFolder: folder,
		},
	}
	src := minioSDK.CopySrcOptions{
		Bucket: s.bucketName,
		Object: objectName(ref),
	}
	if _, err := s.client.CopyObject(ctx, dst, src); err != nil {
		return fmt.Errorf("move %s to %s: %w", ref, folder, err)
	}
	return nil
}

func (s *MinioStore) Get(ctx context.Context, ref string) (*FileInfo, error) {
	stat, err := s.client.StatObject(ctx, s.bucketName, objectName(ref), minioSDK.StatObjectOptions{})
	if err != nil {
		return nil, translateError(ref, err)
	}
	return &FileInfo{
		Ref:         ref,
		Name:        userMeta(stat.UserMetadata, metaName),
		ContentType: stat.ContentType,
		Folder:      userMeta(stat.UserMetadata, metaFolder),
		Size:        stat.Size,
	}, nil
}

func (s *MinioStore) Open(ctx context.Context, ref string) (io.ReadCloser, *FileInfo, error) {
	info, err := s.Get(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucketName, objectName(ref), minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, nil, translateError(ref, err)
	}
	return obj, info, nil
}

func (s *MinioStore) put(ctx context.Context, ref, name, folder, contentType string, r io.Reader, size int64) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucketName, objectName(ref), r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			metaName:   name,
			metaFolder: folder,
		},
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", ref, err)
	}
	return nil
}

func translateError(ref string, err error) error {
	if minioSDK.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	return fmt.Errorf("stat %s: %w", ref, err)
}

// userMeta looks a key up case-insensitively; MinIO canonicalizes header names.
func userMeta(meta map[string]string, key string) string {
	if v, ok := meta[key]; ok {
		return v
	}
	for k, v := range meta {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
