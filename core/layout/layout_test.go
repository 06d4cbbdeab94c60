package layout

import (
	"path/filepath"
	"testing"

	"github.com/gogf/gf/v2/os/gctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionDir_RejectsTraversal(t *testing.T) {
	ctx := gctx.New()

	tests := []struct {
		name       string
		collection string
	}{
		{"parent escape", "../outside"},
		{"nested escape", "a/../../outside"},
		{"root itself", "."},
		{"absolute path", "/etc"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CollectionDir(ctx, tt.collection)
			assert.Error(t, err)
		})
	}
}

func TestCollectionDir_AcceptsPlainName(t *testing.T) {
	ctx := gctx.New()

	dir, err := CollectionDir(ctx, "my_docs")
	require.NoError(t, err)
	assert.Equal(t, "my_docs", filepath.Base(dir))
}

func TestLayout_SubPaths(t *testing.T) {
	ctx := gctx.New()

	docDir, err := DocumentStoreDir(ctx, "kb")
	require.NoError(t, err)
	assert.Equal(t, "chromadb", filepath.Base(docDir))

	ctxDir, err := ContextStoreDir(ctx, "kb", "conv1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("context", "conv1"), filepath.Join(filepath.Base(filepath.Dir(ctxDir)), filepath.Base(ctxDir)))

	transcript, err := TranscriptPath(ctx, "kb", "conv1")
	require.NoError(t, err)
	assert.Equal(t, "conv1.json", filepath.Base(transcript))
	assert.Equal(t, "db", filepath.Base(filepath.Dir(transcript)))

	staging, err := StagingDir(ctx, "kb")
	require.NoError(t, err)
	assert.Equal(t, "files", filepath.Base(staging))
}
