package llm

import "testing"

func TestParseObjectStripsFence(t *testing.T) {
	raw := "```json\n{\"hook\": \"wait for it\", \"caption\": \"new drop\"}\n```"
	result := ParseObject(raw, "optimized_content")
	if result["hook"] != "wait for it" || result["caption"] != "new drop" {
		t.Fatalf("result = %v", result)
	}
}

func TestParseObjectFallback(t *testing.T) {
	raw := "Here are my thoughts: post more often."
	result := ParseObject(raw, "strategy_text")
	if result["strategy_text"] != raw {
		t.Fatalf("fallback = %v, want raw text under strategy_text", result)
	}
}

func TestParseIdeaDrafts(t *testing.T) {
	raw := `[{"title":"thrift flip","description":"before/after","content_type":"reel","priority":"high"}]`
	drafts := ParseIdeaDrafts(raw)
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}
	if drafts[0].Title != "thrift flip" || drafts[0].Priority != "high" {
		t.Fatalf("draft = %+v", drafts[0])
	}
}

func TestParseIdeaDraftsFallback(t *testing.T) {
	raw := "1. Try a morning routine video\n2. Do a Q&A"
	drafts := ParseIdeaDrafts(raw)
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want single fallback draft", len(drafts))
	}
	if drafts[0].Title != "AI Generated Ideas" || drafts[0].Description != raw {
		t.Fatalf("fallback draft = %+v", drafts[0])
	}
}
