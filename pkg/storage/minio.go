package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"eventura/config"
)

// Client MinIO 对象存储客户端封装
type Client struct {
	mc     *minio.Client
	cfg    *config.StorageConfig
	logger *zap.Logger
}

// NewClient 创建 MinIO 连接并确保业务桶存在
func NewClient(cfg *config.StorageConfig, logger *zap.Logger) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("MinIO 连接失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, bucket := range []string{cfg.ImageBucket, cfg.DocumentBucket} {
		exists, err := mc.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("检查桶 %s 失败: %w", bucket, err)
		}
		if !exists {
			if err := mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("创建桶 %s 失败: %w", bucket, err)
			}
		}
	}

	logger.Info("MinIO 连接成功", zap.String("endpoint", cfg.Endpoint))

	return &Client{mc: mc, cfg: cfg, logger: logger}, nil
}

// Put 上传对象并返回可访问 URL
func (c *Client) Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("上传对象失败: %w", err)
	}

	scheme := "http"
	if c.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.cfg.Endpoint, bucket, objectName), nil
}

// Remove 删除对象
func (c *Client) Remove(ctx context.Context, bucket, objectName string) error {
	return c.mc.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

// ImageBucket 图片桶名
func (c *Client) ImageBucket() string { return c.cfg.ImageBucket }

// DocumentBucket 文档桶名
func (c *Client) DocumentBucket() string { return c.cfg.DocumentBucket }
