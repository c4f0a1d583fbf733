package dto

// ProfileDTO 个人档案，全部字段可选，更新为覆盖语义
type ProfileDTO struct {
	Mission        *string `json:"mission"`
	Goals          *string `json:"goals"`
	Vision         *string `json:"vision"`
	Niche          *string `json:"niche"`
	TargetAudience *string `json:"target_audience"`
	Stories        *string `json:"stories"`
	Motivation     *string `json:"motivation"`
}
