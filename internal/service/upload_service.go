package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventura/config"
	"eventura/internal/dto"
	"eventura/pkg/apperror"
	"eventura/pkg/storage"
)

// ── 上传限制 ──

const (
	maxImageSize    = 10 << 20 // 10 MB
	maxDocumentSize = 20 << 20 // 20 MB
)

// 文档类允许的扩展名
var documentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// UploadService 文件上传业务接口
// MinIO 为主路径；UploadLocal 为本地磁盘的遗留路径
type UploadService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	UploadDocument(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	UploadLocal(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	Delete(ctx context.Context, bucket, objectName string) error
}

type uploadService struct {
	cfg    *config.Config
	store  *storage.Client
	logger *zap.Logger
}

// NewUploadService 创建 UploadService 实例
func NewUploadService(cfg *config.Config, store *storage.Client, logger *zap.Logger) UploadService {
	return &uploadService{cfg: cfg, store: store, logger: logger}
}

// ────────────────────── UploadImage ──────────────────────

// UploadImage 上传图片到 MinIO 图片桶
// 限制：≤10MB 且 Content-Type 为 image/*
func (s *uploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file.Size > maxImageSize {
		return nil, apperror.Validationf("image exceeds the %dMB size limit", maxImageSize>>20)
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.Validationf("only image files are allowed")
	}
	return s.putObject(ctx, s.store.ImageBucket(), file, contentType)
}

// ────────────────────── UploadDocument ──────────────────────

// UploadDocument 上传文档到 MinIO 文档桶
// 限制：≤20MB 且扩展名为 pdf/doc/docx
func (s *uploadService) UploadDocument(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file.Size > maxDocumentSize {
		return nil, apperror.Validationf("document exceeds the %dMB size limit", maxDocumentSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !documentExtensions[ext] {
		return nil, apperror.Validationf("only pdf, doc and docx files are allowed")
	}
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.putObject(ctx, s.store.DocumentBucket(), file, contentType)
}

// ────────────────────── UploadLocal ──────────────────────

// UploadLocal 保存文件到本地磁盘（遗留路径，与 MinIO 并存）
func (s *uploadService) UploadLocal(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file.Size > maxDocumentSize {
		return nil, apperror.Validationf("file exceeds the %dMB size limit", maxDocumentSize>>20)
	}

	dir := s.cfg.Storage.LocalDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("创建上传目录失败", zap.String("dir", dir), zap.Error(err))
		return nil, apperror.Internalf(err, "failed to store file")
	}

	objectName := s.objectName(file.Filename)
	dst := filepath.Join(dir, objectName)

	src, err := file.Open()
	if err != nil {
		return nil, apperror.Internalf(err, "failed to read uploaded file")
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		s.logger.Error("创建本地文件失败", zap.String("path", dst), zap.Error(err))
		return nil, apperror.Internalf(err, "failed to store file")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		s.logger.Error("写入本地文件失败", zap.String("path", dst), zap.Error(err))
		return nil, apperror.Internalf(err, "failed to store file")
	}

	return &dto.UploadResponse{
		FileName:    file.Filename,
		ObjectName:  objectName,
		URL:         fmt.Sprintf("%s/uploads/%s", s.cfg.Server.BaseURL, objectName),
		Size:        file.Size,
		ContentType: file.Header.Get("Content-Type"),
	}, nil
}

// ────────────────────── Delete ──────────────────────

func (s *uploadService) Delete(ctx context.Context, bucket, objectName string) error {
	if bucket != s.store.ImageBucket() && bucket != s.store.DocumentBucket() {
		return apperror.Validationf("unknown bucket: %s", bucket)
	}
	if err := s.store.Remove(ctx, bucket, objectName); err != nil {
		s.logger.Error("删除对象失败", zap.String("bucket", bucket), zap.String("object", objectName), zap.Error(err))
		return apperror.Internalf(err, "failed to delete file")
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *uploadService) putObject(ctx context.Context, bucket string, file *multipart.FileHeader, contentType string) (*dto.UploadResponse, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperror.Internalf(err, "failed to read uploaded file")
	}
	defer src.Close()

	objectName := s.objectName(file.Filename)
	url, err := s.store.Put(ctx, bucket, objectName, src, file.Size, contentType)
	if err != nil {
		s.logger.Error("上传对象失败", zap.String("bucket", bucket), zap.Error(err))
		return nil, apperror.Internalf(err, "failed to store file")
	}

	return &dto.UploadResponse{
		FileName:    file.Filename,
		ObjectName:  objectName,
		URL:         url,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}

// objectName 生成不冲突的对象名，保留原始扩展名
func (s *uploadService) objectName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}
