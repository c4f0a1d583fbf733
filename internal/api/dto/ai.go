package dto

// GenerateIdeasDTO 按支柱批量生成灵感
type GenerateIdeasDTO struct {
	PillarID FlexInt `json:"pillar_id"`
}

// OptimizeContentDTO 按平台优化既有内容
type OptimizeContentDTO struct {
	ContentID FlexInt `json:"content_id"`
	Platform  *string `json:"platform"`
}
