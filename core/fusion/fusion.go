package fusion

import (
	"sort"

	"github.com/cloudwego/eino/schema"
)

// DefaultK RRF常数，业界通用取值
const DefaultK = 60.0

// Fuse 对多路召回结果做RRF (Reciprocal Rank Fusion) 融合
// RRF公式: score = sum(1/(k+rank+1))，rank 从0开始
// 相同内容的文档视为同一条目，分数跨列表累加
func Fuse(lists [][]*schema.Document, k float64, topK int) []*schema.Document {
	if k <= 0 {
		k = DefaultK
	}

	rrfScores := make(map[string]float64) // content -> RRF score
	docMap := make(map[string]*schema.Document)
	// 记录首次出现顺序，保证同分条目排序稳定
	order := make(map[string]int)
	next := 0

	for _, list := range lists {
		for rank, doc := range list {
			if doc == nil {
				continue
			}
			key := doc.Content
			rrfScores[key] += 1.0 / (k + float64(rank) + 1.0)
			if _, exists := docMap[key]; !exists {
				docMap[key] = doc
				order[key] = next
				next++
			}
		}
	}

	docs := make([]*schema.Document, 0, len(docMap))
	for key, doc := range docMap {
		doc.WithScore(rrfScores[key])
		docs = append(docs, doc)
	}

	// 按RRF分数降序，同分按首次出现顺序
	sort.SliceStable(docs, func(i, j int) bool {
		si, sj := rrfScores[docs[i].Content], rrfScores[docs[j].Content]
		if si != sj {
			return si > sj
		}
		return order[docs[i].Content] < order[docs[j].Content]
	})

	if topK > 0 && len(docs) > topK {
		docs = docs[:topK]
	}
	return docs
}

// FuseTexts 融合后仅返回去重的文档内容
func FuseTexts(lists [][]*schema.Document, k float64, topK int) []string {
	docs := Fuse(lists, k, topK)
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		texts = append(texts, doc.Content)
	}
	return texts
}
