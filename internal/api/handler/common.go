package handler

import (
	"strconv"

	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

// parseIDParam 路径 id 参数统一按无符号整数解析
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}
