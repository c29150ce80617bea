package util

import "time"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Batasan upload video pembelajaran.
const (
	MimeVideoMP4       = "video/mp4"
	MaxVideoUploadSize = 524288000 // 500 MB
)

// TokenExpiration adalah masa berlaku token pelajar/mentor/admin.
const TokenExpiration = 7 * 24 * time.Hour
