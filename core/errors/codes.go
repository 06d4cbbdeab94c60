package errors

// ErrCode 业务错误码类型
type ErrCode int

const (
	// 通用错误 1000-1999
	ErrInvalidParameter ErrCode = 1001 // 参数错误
	ErrInternalError    ErrCode = 1002 // 内部错误
	ErrNotFound         ErrCode = 1003 // 资源未找到
	ErrAlreadyExists    ErrCode = 1004 // 资源已存在
	ErrOperationFailed  ErrCode = 1005 // 操作失败

	// 模型相关 2000-2999
	ErrModelNotFound      ErrCode = 2001 // 模型未找到
	ErrProviderNotFound   ErrCode = 2002 // 模型提供方未配置
	ErrEmbeddingFailed    ErrCode = 2003 // Embedding失败
	ErrLLMCallFailed      ErrCode = 2004 // LLM调用失败
	ErrStreamingFailed    ErrCode = 2005 // 流式响应失败
	ErrModelListFailed    ErrCode = 2006 // 模型列表获取失败
	ErrModelConfigInvalid ErrCode = 2007 // 模型配置无效

	// 集合相关 3000-3999
	ErrCollectionNotFound   ErrCode = 3001 // 集合未找到
	ErrCollectionNameUnsafe ErrCode = 3002 // 集合名称越界
	ErrCollectionCreate     ErrCode = 3003 // 集合创建失败
	ErrCollectionDelete     ErrCode = 3004 // 集合删除失败

	// 文档摄取相关 4000-4999
	ErrDocumentParseFailed ErrCode = 4001 // 文档解析失败
	ErrFileUploadFailed    ErrCode = 4002 // 文件上传失败
	ErrFileReadFailed      ErrCode = 4003 // 文件读取失败
	ErrIndexingFailed      ErrCode = 4004 // 摄取管线失败

	// 向量库相关 5000-5999
	ErrVectorStoreInit   ErrCode = 5001 // 向量库初始化失败
	ErrVectorSearch      ErrCode = 5002 // 向量搜索失败
	ErrVectorInsert      ErrCode = 5003 // 向量插入失败
	ErrContextStoreWrite ErrCode = 5004 // 上下文库写入失败

	// 记录存储相关 6000-6999
	ErrRecordRead   ErrCode = 6001 // 记录读取失败
	ErrRecordWrite  ErrCode = 6002 // 记录写入失败
	ErrRecordDelete ErrCode = 6003 // 记录删除失败

	// 对话相关 7000-7999
	ErrConversationNotFound ErrCode = 7001 // 对话未找到
	ErrChatFailed           ErrCode = 7002 // 对话轮次失败

	// 模板相关 8000-8999
	ErrTemplateNotFound ErrCode = 8001 // 模板未找到
	ErrTemplateInvalid  ErrCode = 8002 // 模板缺少必需占位符

	// 检索相关 9000-9999
	ErrRetrievalFailed ErrCode = 9001 // 检索失败
)

// HTTPStatusCode 返回错误码对应的HTTP状态码
func (e ErrCode) HTTPStatusCode() int {
	switch e {
	case ErrInvalidParameter, ErrCollectionNameUnsafe, ErrTemplateInvalid, ErrModelConfigInvalid:
		return 400
	case ErrNotFound, ErrModelNotFound, ErrProviderNotFound, ErrCollectionNotFound,
		ErrConversationNotFound, ErrTemplateNotFound:
		return 404
	case ErrAlreadyExists:
		return 409
	default:
		return 500
	}
}
