package admin

import (
	"github.com/campaign-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ResetSystem 清空业务数据并将虚拟时钟归零
func (h *Handler) ResetSystem(c *gin.Context) {
	if err := h.ResetService.Reset(); err != nil {
		respondError(c, response.CodeInternal, "reset failed", err)
		return
	}
	requestLog(c).Infow("system_reset")
	response.SuccessWithMsg(c, "Resetting is successful.", nil)
}
