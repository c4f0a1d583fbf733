package model

// ContentPlatform 内容与平台的多对多关联表
type ContentPlatform struct {
	ContentID  uint64 `gorm:"primaryKey" json:"content_id"`
	PlatformID uint64 `gorm:"primaryKey;index:idx_cp_platform_id" json:"platform_id"`
}

func (ContentPlatform) TableName() string {
	return "content_platforms"
}
