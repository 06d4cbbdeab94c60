package template

import (
	"strings"
	"testing"

	coreErrors "github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tpl     string
		wantErr bool
	}{
		{"both placeholders", "ctx: {context} q: {question}", false},
		{"missing context", "q: {question}", true},
		{"missing question", "ctx: {context}", true},
		{"unknown placeholder", "{context} {question} {extra}", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tpl)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, coreErrors.ErrTemplateInvalid, coreErrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestManager_SetActiveAndMode(t *testing.T) {
	m := NewManager()
	assert.Equal(t, ModeDefault, m.Mode())

	require.NoError(t, m.SetActive("Use {context} to answer {question}"))
	assert.Equal(t, ModeCustom, m.Mode())

	// 非法模板不改变当前状态
	assert.Error(t, m.SetActive("no placeholders"))
	assert.Equal(t, ModeCustom, m.Mode())

	m.Reset()
	assert.Equal(t, ModeDefault, m.Mode())

	// 设置与默认模板相同的内容仍视为 default
	require.NoError(t, m.SetActive(DefaultTemplate))
	assert.Equal(t, ModeDefault, m.Mode())
}

func TestManager_Render(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.SetActive("C={context} Q={question}"))

	got := m.Render("some docs", "why")
	assert.Equal(t, "C=some docs Q=why", got)
}

func TestManager_RenderDefaultFallback(t *testing.T) {
	m := NewManager()

	got := m.Render("docs here", "the question")
	assert.True(t, strings.Contains(got, "docs here"))
	assert.True(t, strings.Contains(got, "the question"))
	assert.False(t, strings.Contains(got, "{context}"))
	assert.False(t, strings.Contains(got, "{question}"))
}
