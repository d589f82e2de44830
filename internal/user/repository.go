package user

import (
	"errors"

	"github.com/SlpAus/game-match-backend/internal/platform/database"
	"gorm.io/gorm"
)

// 本文件提供user模块对数据库的全部查询原语。
// 两条匹配查询是只读的等值过滤，所有规则判断都留在服务层。

// findUserByID 按主键加载用户及其兴趣集合。
// 用户不存在时返回 (nil, nil)，由调用方决定如何报告。
func findUserByID(id uint) (*User, error) {
	var u User
	err := database.DB.Preload("Interests").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// findAllUsers 加载全部用户及其兴趣集合。
func findAllUsers() ([]User, error) {
	var users []User
	if err := database.DB.Preload("Interests").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// findInterestByID 按主键加载单个兴趣。
// 兴趣不存在时返回 (nil, nil)。
func findInterestByID(id uint) (*Interest, error) {
	var interest Interest
	err := database.DB.First(&interest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

// FindInterestsByUserAndGame 返回某用户在指定游戏下已有的兴趣。
// 唯一性不变量成立时结果最多一条，这里仍按列表返回以便调用方做冲突判断。
func FindInterestsByUserAndGame(userID uint, game Game) ([]Interest, error) {
	var interests []Interest
	err := database.DB.Where("user_id = ? AND game = ?", userID, game).Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// findMatchUsers 返回拥有 (game, level) 兴趣且地区相同的所有用户。
// DISTINCT保证即使连接在理论上产生重复行，每个用户也只出现一次。
func findMatchUsers(game Game, level Level, geography Geography) ([]User, error) {
	var users []User
	err := database.DB.
		Distinct("users.*").
		Joins("JOIN interests ON interests.user_id = users.id").
		Where("interests.game = ? AND interests.level = ? AND users.geography = ?", game, level, geography).
		Preload("Interests").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// findUsersWithMaxCredit 返回在 (game, level) 下credit等于全局最大值的所有用户。
// 最大值通过关联子查询在数据库内求得，并列者全部返回。
func findUsersWithMaxCredit(game Game, level Level) ([]User, error) {
	maxCredit := database.DB.Model(&Interest{}).
		Select("MAX(credit)").
		Where("game = ? AND level = ?", game, level)

	var users []User
	err := database.DB.
		Distinct("users.*").
		Joins("JOIN interests ON interests.user_id = users.id").
		Where("interests.game = ? AND interests.level = ? AND interests.credit = (?)", game, level, maxCredit).
		Preload("Interests").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
