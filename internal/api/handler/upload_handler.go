package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/service"
	"eventura/pkg/response"
)

// UploadHandler 文件上传接口
type UploadHandler struct {
	svc    service.UploadService
	logger *zap.Logger
}

// UploadImage POST /api/v1/file-upload/minio/image
// multipart 表单字段名 "file"
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "file field is required")
		return
	}
	result, err := h.svc.UploadImage(c.Request.Context(), file)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, result)
}

// UploadDocument POST /api/v1/file-upload/minio/document
func (h *UploadHandler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "file field is required")
		return
	}
	result, err := h.svc.UploadDocument(c.Request.Context(), file)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, result)
}

// UploadLocal POST /api/v1/file-upload/local
// 本地磁盘存储的遗留路径
func (h *UploadHandler) UploadLocal(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "file field is required")
		return
	}
	result, err := h.svc.UploadLocal(c.Request.Context(), file)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, result)
}

// Delete DELETE /api/v1/file-upload/minio/:bucket/:object
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("bucket"), c.Param("object")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "file deleted"})
}
