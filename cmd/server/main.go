package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/game-match-backend/api"
	"github.com/SlpAus/game-match-backend/internal/platform/config"
	"github.com/SlpAus/game-match-backend/internal/platform/database"
	"github.com/SlpAus/game-match-backend/internal/platform/shutdown"
	"github.com/SlpAus/game-match-backend/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 加载.env（如果存在），便于本地用环境变量覆盖配置
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	database.InitDB(cfg)

	// 执行应用首次启动初始化流程
	if err := user.PrimeDB(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(api.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Println("服务器已准备就绪，开始监听 " + cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	shutdown.ListenForSignalsAndShutdown(server)
}
