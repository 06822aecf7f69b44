package dto

// ── 文件上传模块 DTO ──

// UploadResponse 上传结果响应
type UploadResponse struct {
	FileName    string `json:"file_name"`
	ObjectName  string `json:"object_name"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
