package dto

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// 表单提交的数字字段可能是 number、数字字符串或空串，
// 统一在反序列化时归一：空串与 null 视为未填。

type FlexInt struct {
	Value *int64
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.Value = nil
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			f.Value = nil
			return nil
		}
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			fv, ferr := strconv.ParseFloat(str, 64)
			if ferr != nil {
				return err
			}
			v = int64(fv)
		}
		f.Value = &v
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		// 兼容 12.0 这类浮点提交
		var fv float64
		if ferr := json.Unmarshal(data, &fv); ferr != nil {
			return err
		}
		v = int64(fv)
	}
	f.Value = &v
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// Uint64 转为无符号 id，空值或非正数返回 nil
func (f FlexInt) Uint64() *uint64 {
	if f.Value == nil || *f.Value <= 0 {
		return nil
	}
	v := uint64(*f.Value)
	return &v
}

type FlexFloat struct {
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.Value = nil
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			f.Value = nil
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		f.Value = &v
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// FlexIDs id 数组，成员同样兼容字符串数字，空成员丢弃
type FlexIDs []uint64

func (f *FlexIDs) UnmarshalJSON(data []byte) error {
	var raw []FlexInt
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ids := make(FlexIDs, 0, len(raw))
	for _, v := range raw {
		if id := v.Uint64(); id != nil {
			ids = append(ids, *id)
		}
	}
	*f = ids
	return nil
}
