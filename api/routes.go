package api

import (
	"github.com/SlpAus/game-match-backend/internal/interest"
	"github.com/SlpAus/game-match-backend/internal/platform/health"
	"github.com/SlpAus/game-match-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", health.Handler)

		// 用户与匹配相关的路由组 /api/user
		userRoutes := api.Group("/user")
		{
			userRoutes.GET("", user.GetAllUsers)
			userRoutes.POST("", user.CreateUser)
			userRoutes.GET("/match", user.GetMatchUsers)
			userRoutes.GET("/interest/credit/max", user.GetUsersWithMaxCredit)
			userRoutes.GET("/:userId", user.GetUserByID)
			userRoutes.PUT("/:userId", user.UpdateUserByID)
			userRoutes.DELETE("/:userId", user.DeleteUserByID)
			userRoutes.GET("/:userId/match/:interestId", user.GetOtherUserMatches)

			// 兴趣相关的路由，挂在用户之下
			userRoutes.GET("/:userId/interest/:interestId", interest.GetInterestByID)
			userRoutes.POST("/:userId/interest", interest.CreateUserInterest)
			userRoutes.PUT("/:userId/interest/:interestId", interest.UpdateUserInterest)
			userRoutes.DELETE("/:userId/interest/:interestId", interest.DeleteUserInterest)
			userRoutes.PUT("/:userId/interest/:interestId/credit", interest.UpdateInterestCredit)
		}
	}
}
