package admin

import (
	"strings"

	"github.com/campaign-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CommandRequest 命令执行请求
type CommandRequest struct {
	Command string `json:"command" form:"command" binding:"required"`
}

// CommandResponse 命令执行响应。命令失败时 Output 为失败原因，接口本身仍返回成功。
type CommandResponse struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// ExecuteCommand 执行一条运营命令并返回单行输出
func (h *Handler) ExecuteCommand(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	raw := strings.TrimSpace(req.Command)
	output, err := h.Dispatcher.Execute(raw)
	if err != nil {
		// 命令层错误按协议转为输出行，不作为 HTTP 错误
		output = err.Error()
		requestLog(c).Warnw("command_failed", "command", raw, "reason", output)
	} else {
		requestLog(c).Infow("command_executed", "command", raw, "output", output)
	}

	response.Success(c, CommandResponse{
		Command: raw,
		Output:  output,
	})
}
