package dto

// IdeaBaseDTO 创建/更新内容灵感
type IdeaBaseDTO struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ContentPillarID FlexInt `json:"content_pillar_id"`
	InspirationLink *string `json:"inspiration_link"`
	Priority        *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status          *string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}
