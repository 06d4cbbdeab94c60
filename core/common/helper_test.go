package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/doc.pdf"))
	assert.True(t, IsURL("http://localhost:8080/page"))
	assert.False(t, IsURL("./local/file.txt"))
	assert.False(t, IsURL("plain text"))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "short", Summarize("short", 50))

	long := ""
	for i := 0; i < 60; i++ {
		long += "x"
	}
	got := Summarize(long, 50)
	assert.Len(t, got, 53)
	assert.Equal(t, "...", got[50:])

	// 多字节字符按字符数截断而不是字节数
	cn := "这是一个很长的中文问题，用来验证摘要按字符截断这是一个很长的中文问题用来验证摘要按字符截断超出五十个字符之后的部分"
	cnGot := Summarize(cn, 50)
	assert.Equal(t, "...", cnGot[len(cnGot)-3:])
}
