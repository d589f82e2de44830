package health

import (
	"net/http"

	"github.com/SlpAus/game-match-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// Ping 对底层数据库连接执行一次存活探测。
func Ping() error {
	sqlDB, err := database.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Handler 暴露 GET /api/health
// 数据库不可用时返回503，供部署环境的就绪探针使用。
func Handler(c *gin.Context) {
	if err := Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
