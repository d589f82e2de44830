package user

import (
	"fmt"

	"github.com/SlpAus/game-match-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&User{}, &Interest{}); err != nil {
		return fmt.Errorf("无法迁移user/interest表: %w", err)
	}
	fmt.Println("User/Interest数据库表迁移成功。")
	return nil
}

// PrimeDB 是user模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
