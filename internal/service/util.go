package service

import (
	"strings"
	"time"
)

// 前端提交的时间字段可能带时区、不带时区或只有日期
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseFlexTime 解析可选时间字段。
// 指针为 nil 表示字段缺省（不改动），空串表示清空，其余按常见格式解析。
func parseFlexTime(raw *string) (value *time.Time, present bool, err error) {
	if raw == nil {
		return nil, false, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, true, nil
	}
	for _, layout := range timeLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return &t, true, nil
		}
	}
	return nil, true, ErrParamInvalid
}

// dateOnly 截断到当天零点，快照按日期去重
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// engagementRate (likes+comments+shares)/views*100，views 为 0 时记 0
func engagementRate(views, likes, comments, shares int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+comments+shares) / float64(views) * 100
}
