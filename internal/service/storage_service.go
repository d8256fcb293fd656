package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"oecd_explorer/internal/config"
	"oecd_explorer/internal/util"
	"oecd_explorer/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 导出归档的存储后端，同名对象直接覆盖
type StorageProvider interface {
	Name() string
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(key string) string
}

// LocalStorageProvider 写入本地目录，由 /exports 静态路由提供下载
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Name() string { return util.StorageLocal }

// Put 先写临时文件再 rename，同一天重复导出不会留下半截文件
func (p *LocalStorageProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	dst := filepath.Join(p.Config.LocalPath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".archive-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (p *LocalStorageProvider) URL(key string) string {
	return "/" + filepath.ToSlash(key)
}

// MinioStorageProvider MinIO 对象存储
type MinioStorageProvider struct {
	bucket string
	client *minio.Client
}

// NewMinioStorageProvider 连接 MinIO，桶不存在时创建
func NewMinioStorageProvider(ctx context.Context, cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinioBucket, err)
		}
	}
	return &MinioStorageProvider{bucket: cfg.MinioBucket, client: client}, nil
}

func (p *MinioStorageProvider) Name() string { return util.StorageMinio }

func (p *MinioStorageProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: "attachment; filename=\"" + filepath.Base(key) + "\"",
	})
	return err
}

func (p *MinioStorageProvider) URL(key string) string {
	return p.client.EndpointURL().String() + "/" + p.bucket + "/" + key
}

// OSSStorageProvider 阿里云 OSS
type OSSStorageProvider struct {
	endpoint string
	bucket   *oss.Bucket
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{endpoint: cfg.OSSEndpoint, bucket: bucket}, nil
}

func (p *OSSStorageProvider) Name() string { return util.StorageOSS }

func (p *OSSStorageProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return p.bucket.PutObject(key, bytes.NewReader(data),
		oss.ContentType(contentType),
		oss.ContentDisposition("attachment; filename=\""+filepath.Base(key)+"\""),
	)
}

func (p *OSSStorageProvider) URL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.bucket.BucketName, p.endpoint, key)
}

// StorageService 导出归档存储
type StorageService struct {
	Provider StorageProvider
}

const storageConnectTimeout = 5 * time.Second

// NewStorageService 按 storage.type 选择后端，远端不可用时退回本地目录
func NewStorageService(cfg *config.Config) *StorageService {
	var (
		provider StorageProvider
		err      error
	)
	switch cfg.Storage.Type {
	case util.StorageMinio:
		ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
		provider, err = NewMinioStorageProvider(ctx, &cfg.Storage)
		cancel()
	case util.StorageOSS:
		provider, err = NewOSSStorageProvider(&cfg.Storage)
	}
	if err != nil {
		logger.Log.Warn("Remote storage unavailable, using local directory",
			zap.String("type", cfg.Storage.Type), zap.Error(err))
		provider = nil
	}
	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}
	return &StorageService{Provider: provider}
}

// Put 写入对象并返回下载地址
func (s *StorageService) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.Provider.Put(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("%s put %s: %w", s.Provider.Name(), key, err)
	}
	return s.Provider.URL(key), nil
}

// Backend 当前生效的存储类型
func (s *StorageService) Backend() string {
	return s.Provider.Name()
}
