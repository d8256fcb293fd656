package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeImage = "image/"
	MimeJSON  = "application/json"

	MaxInfographicBytes  = 8 << 20
	MaxImportBytes       = 64 << 20
	PublicationURLMarker = "linkedin.com"
)

var AllowedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}
