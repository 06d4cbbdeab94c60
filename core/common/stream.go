package common

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gctx"
	"github.com/google/uuid"
)

// StreamData SSE事件载荷
type StreamData struct {
	Id               string `json:"id"`      // 同一个消息里面的id是相同的
	Created          int64  `json:"created"` // 消息初始生成时间
	Content          string `json:"content"` // 消息具体内容
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

// StreamResponse 把模型流式输出转发为SSE响应
// 返回完整拼接的回答；流中途出错时返回错误，调用方据此跳过持久化
func StreamResponse(ctx context.Context, streamReader *schema.StreamReader[*schema.Message]) (answer string, err error) {
	httpReq := ghttp.RequestFromCtx(ctx)
	httpResp := httpReq.Response
	httpResp.Header().Set("Content-Type", "text/event-stream")
	httpResp.Header().Set("Cache-Control", "no-cache")
	httpResp.Header().Set("Connection", "keep-alive")
	httpResp.Header().Set("X-Accel-Buffering", "no") // 禁用Nginx缓冲
	httpResp.Header().Set("Access-Control-Allow-Origin", "*")

	sd := &StreamData{
		Id:      uuid.NewString(),
		Created: time.Now().Unix(),
	}

	for {
		chunk, recvErr := streamReader.Recv()
		if recvErr == io.EOF {
			break
		}
		if recvErr != nil {
			writeSSEError(httpResp, recvErr)
			return "", recvErr
		}
		if len(chunk.Content) == 0 && len(chunk.ReasoningContent) == 0 {
			continue
		}

		answer += chunk.Content
		sd.Content = chunk.Content
		sd.ReasoningContent = chunk.ReasoningContent
		marshal, _ := sonic.Marshal(sd)
		writeSSEData(httpResp, string(marshal))
	}

	writeSSEDone(httpResp)
	return answer, nil
}

// writeSSEData 写入SSE事件
func writeSSEData(resp *ghttp.Response, data string) {
	if len(data) == 0 {
		return
	}
	resp.Writeln(fmt.Sprintf("data:%s\n", data))
	resp.Flush()
}

func writeSSEDone(resp *ghttp.Response) {
	resp.Writeln(fmt.Sprintf("data:%s\n", "[DONE]"))
	resp.Flush()
}

// writeSSEError 写入SSE错误
func writeSSEError(resp *ghttp.Response, err error) {
	g.Log().Error(gctx.New(), err)
	resp.Writeln(fmt.Sprintf("event: error\ndata: %s\n\n", err.Error()))
	resp.Flush()
}
