package dto

// PillarBaseDTO 创建/更新内容支柱
type PillarBaseDTO struct {
	PillarName       *string `json:"pillar_name"`
	Description      *string `json:"description"`
	Keywords         *string `json:"keywords"`
	TargetAudience   *string `json:"target_audience"`
	ContentFrequency *string `json:"content_frequency"`
	Goals            *string `json:"goals"`
	Color            *string `json:"color"`
}
