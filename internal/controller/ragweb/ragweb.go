package ragweb

// ControllerV1 /api 路由组的处理器集合
type ControllerV1 struct{}

// NewV1 创建控制器
func NewV1() *ControllerV1 {
	return &ControllerV1{}
}
