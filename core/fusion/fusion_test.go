package fusion

import (
	"math"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func docs(contents ...string) []*schema.Document {
	result := make([]*schema.Document, 0, len(contents))
	for _, c := range contents {
		result = append(result, &schema.Document{Content: c})
	}
	return result
}

func TestFuse_CrossListAccumulation(t *testing.T) {
	// doc A 仅在第一路排第0位，doc B 在第一路第1位、第二路第0位
	lists := [][]*schema.Document{
		docs("doc A", "doc B"),
		docs("doc B"),
	}

	fused := Fuse(lists, 60, 5)
	assert.Len(t, fused, 2)
	// B: 1/62+1/61 > A: 1/61
	assert.Equal(t, "doc B", fused[0].Content)
	assert.Equal(t, "doc A", fused[1].Content)

	wantB := 1.0/62.0 + 1.0/61.0
	wantA := 1.0 / 61.0
	assert.InDelta(t, wantB, fused[0].Score(), 1e-12)
	assert.InDelta(t, wantA, fused[1].Score(), 1e-12)
}

func TestFuse_EmptyInputs(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]*schema.Document
	}{
		{"no lists", nil},
		{"empty lists", [][]*schema.Document{{}, {}}},
		{"nil entries", [][]*schema.Document{{nil, nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Fuse(tt.lists, 60, 5))
		})
	}
}

func TestFuse_TopKBound(t *testing.T) {
	lists := [][]*schema.Document{
		docs("a", "b", "c", "d", "e", "f", "g"),
	}
	fused := Fuse(lists, 60, 3)
	assert.Len(t, fused, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{fused[0].Content, fused[1].Content, fused[2].Content})
}

func TestFuse_Deduplicates(t *testing.T) {
	// 同一内容在同一路出现两次，也只保留一个条目
	lists := [][]*schema.Document{
		docs("dup", "other", "dup"),
	}
	fused := Fuse(lists, 60, 10)
	assert.Len(t, fused, 2)
	assert.Equal(t, "dup", fused[0].Content)
}

func TestFuse_Deterministic(t *testing.T) {
	lists := [][]*schema.Document{
		docs("x", "y", "z"),
		docs("z", "y", "x"),
	}
	first := FuseTexts(lists, 60, 3)
	for i := 0; i < 20; i++ {
		again := FuseTexts([][]*schema.Document{
			docs("x", "y", "z"),
			docs("z", "y", "x"),
		}, 60, 3)
		assert.Equal(t, first, again)
	}
}

func TestFuse_TieStability(t *testing.T) {
	// 两个条目分数完全相同时，先出现的排前
	lists := [][]*schema.Document{
		docs("first", "second"),
		docs("second", "first"),
	}
	fused := Fuse(lists, 60, 2)
	assert.Len(t, fused, 2)
	assert.InDelta(t, fused[0].Score(), fused[1].Score(), 1e-12)
	assert.Equal(t, "first", fused[0].Content)
	assert.Equal(t, "second", fused[1].Content)
}

func TestFuse_RankMonotonicity(t *testing.T) {
	// 单一列表时融合不改变相对顺序
	lists := [][]*schema.Document{
		docs("r0", "r1", "r2", "r3"),
	}
	fused := Fuse(lists, 60, 10)
	for i := 1; i < len(fused); i++ {
		if fused[i-1].Score() < fused[i].Score() {
			t.Errorf("score not descending at %d: %v < %v", i, fused[i-1].Score(), fused[i].Score())
		}
	}
	assert.Equal(t, []string{"r0", "r1", "r2", "r3"}, FuseTexts(lists, 60, 10))
}

func TestFuse_DefaultK(t *testing.T) {
	lists := [][]*schema.Document{docs("only")}
	fused := Fuse(lists, 0, 1)
	assert.Len(t, fused, 1)
	if math.Abs(fused[0].Score()-1.0/61.0) > 1e-12 {
		t.Errorf("default k not applied, score=%v", fused[0].Score())
	}
}
