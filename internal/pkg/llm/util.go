package llm

import (
	"context"
	log "log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
)

func readPrompt(file string, fallback string) string {
	if file == "" {
		file = fallback
	}
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "file", file, "err", err)
		return ""
	}
	return string(data)
}

// fetchModel 单次模型调用，受并发信号量与超时约束
func (g *openaiGateway) fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.InfoContext(ctx, "正在请求AI大模型")
	resp, err := g.client.GenerateContent(ctx, messages,
		llms.WithModel(g.model),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", errors.Wrap(err, "llm request")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm response has no choices")
	}
	return resp.Choices[0].Content, nil
}

func marshalPayload(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error("AI大模型请求数据序列化失败", "err", err)
		return "", err
	}
	return string(data), nil
}

// stripFence 去掉模型偶尔包裹的 markdown 代码围栏
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseObject 解析 JSON 对象响应，解析失败时退化为单字段文本
func ParseObject(raw string, fallbackKey string) map[string]any {
	cleaned := stripFence(raw)
	result := map[string]any{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return map[string]any{fallbackKey: raw}
	}
	return result
}

// ParseIdeaDrafts 解析灵感草稿数组，解析失败时整段文本作为唯一草稿
func ParseIdeaDrafts(raw string) []*IdeaDraft {
	cleaned := stripFence(raw)
	drafts := make([]*IdeaDraft, 0)
	if err := json.Unmarshal([]byte(cleaned), &drafts); err != nil {
		return []*IdeaDraft{{Title: "AI Generated Ideas", Description: raw, ContentType: "post"}}
	}
	return drafts
}
