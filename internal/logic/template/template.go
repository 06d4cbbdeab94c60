package template

import (
	"regexp"
	"strings"
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
)

// DefaultTemplate 内置提示词模板，进程启动时生效
const DefaultTemplate = `You are an assistant for question-answering tasks. Use the retrieved context below to answer the question. If the context does not contain the answer, say that you don't know.

Context:
{context}

Question: {question}

Answer:`

// 模板中必须出现的占位符
const (
	PlaceholderContext  = "{context}"
	PlaceholderQuestion = "{question}"
)

// ModeDefault / ModeCustom 当前生效模板的来源
const (
	ModeDefault = "default"
	ModeCustom  = "custom"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// Manager 管理当前生效的提示词模板
// 激活状态仅保留在内存中，进程重启后回到默认模板
type Manager struct {
	mu     sync.RWMutex
	active string // 为空表示使用默认模板
}

// NewManager 创建模板管理器，初始为默认模板
func NewManager() *Manager {
	return &Manager{}
}

// Validate 校验模板是否包含必需占位符且无未知占位符
func Validate(tpl string) error {
	if !strings.Contains(tpl, PlaceholderContext) || !strings.Contains(tpl, PlaceholderQuestion) {
		return errors.Newf(errors.ErrTemplateInvalid,
			"template must contain %s and %s placeholders", PlaceholderContext, PlaceholderQuestion)
	}
	for _, match := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
		switch match[1] {
		case "context", "question":
		default:
			return errors.Newf(errors.ErrTemplateInvalid, "unknown placeholder {%s}", match[1])
		}
	}
	return nil
}

// SetActive 设置当前生效模板，校验失败时保持原状态
func (x *Manager) SetActive(tpl string) error {
	if err := Validate(tpl); err != nil {
		return err
	}
	x.mu.Lock()
	x.active = tpl
	x.mu.Unlock()
	return nil
}

// Reset 回到默认模板
func (x *Manager) Reset() {
	x.mu.Lock()
	x.active = ""
	x.mu.Unlock()
}

// Mode 返回当前模板来源: default / custom
// 以文本比较判定，设置了与默认模板相同的内容仍视为 default
func (x *Manager) Mode() string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.active == "" || x.active == DefaultTemplate {
		return ModeDefault
	}
	return ModeCustom
}

// Render 用当前生效模板渲染提示词
// 生效模板渲染失败时退回默认模板，本次调用不报错
func (x *Manager) Render(contextText, question string) string {
	x.mu.RLock()
	active := x.active
	x.mu.RUnlock()

	if active != "" {
		if err := Validate(active); err == nil {
			return render(active, contextText, question)
		}
	}
	return render(DefaultTemplate, contextText, question)
}

func render(tpl, contextText, question string) string {
	result := strings.ReplaceAll(tpl, PlaceholderContext, contextText)
	return strings.ReplaceAll(result, PlaceholderQuestion, question)
}
