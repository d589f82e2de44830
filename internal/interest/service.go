package interest

import (
	"github.com/SlpAus/game-match-backend/internal/platform/database"
	"github.com/SlpAus/game-match-backend/internal/user"
	"github.com/SlpAus/game-match-backend/pkg/apperror"
)

// 兴趣的领域规则层。所有写入前都要通过归属校验与游戏唯一性校验，
// 校验的先后顺序与对外报错类别是API契约的一部分。

// getInterestByInterestID 返回某用户的单条兴趣。
func getInterestByInterestID(userID, interestID uint) (*user.Interest, error) {
	return user.ResolveOwnedInterest(userID, interestID)
}

// createUserInterest 为用户新建一条兴趣。
// 规则：携带已有ID的请求被视为借道创建端点的更新，跳过唯一性检查；
// 真正的新建在用户已拥有同game兴趣时被拒绝。
func createUserInterest(userID uint, candidate user.Interest) (*user.Interest, error) {
	owner, err := user.ResolveUser(userID)
	if err != nil {
		return nil, err
	}

	existing, err := user.FindInterestsByUserAndGame(userID, candidate.Game)
	if err != nil {
		return nil, err
	}
	if candidate.ID == 0 && len(existing) > 0 {
		return nil, apperror.NewInvalidRequest("User already has interest with game: %s", candidate.Game)
	}

	candidate.UserID = owner.ID
	if err := database.DB.Save(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// updateUserInterestByInterestID 就地覆盖兴趣的credit/game/level。
// 请求体ID与路径ID不一致时直接拒绝，这个检查先于任何数据库查找。
func updateUserInterestByInterestID(userID, interestID uint, candidate user.Interest) (*user.Interest, error) {
	if candidate.ID != interestID {
		return nil, apperror.NewInvalidRequest(
			"The interest has a different interestId: %d from path variable: %d", candidate.ID, interestID)
	}

	if _, err := user.ResolveUser(userID); err != nil {
		return nil, err
	}
	existing, err := user.ResolveOwnedInterest(userID, interestID)
	if err != nil {
		return nil, err
	}

	// 只有game发生变化时才需要重查唯一性；
	// 改回自己原有的game不会触发冲突。
	if existing.Game != candidate.Game {
		conflicts, err := user.FindInterestsByUserAndGame(userID, candidate.Game)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 1 || (len(conflicts) == 1 && conflicts[0].ID != interestID) {
			return nil, apperror.NewInvalidRequest("User already has interest with game: %s", candidate.Game)
		}
	}

	existing.Credit = candidate.Credit
	existing.Game = candidate.Game
	existing.Level = candidate.Level
	if err := database.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// deleteUserInterestByInterestID 删除某用户的单条兴趣。
func deleteUserInterestByInterestID(userID, interestID uint) error {
	if _, err := user.ResolveUser(userID); err != nil {
		return err
	}
	if _, err := user.ResolveOwnedInterest(userID, interestID); err != nil {
		return err
	}
	return database.DB.Delete(&user.Interest{}, interestID).Error
}

// updateUserInterestCreditByInterestID 只更新credit一个字段。
// 负数检查先于存在性查找。
func updateUserInterestCreditByInterestID(userID, interestID uint, credit int) error {
	if credit < 0 {
		return apperror.NewInvalidRequest("Credit should be zero or positive")
	}

	if _, err := user.ResolveUser(userID); err != nil {
		return err
	}
	if _, err := user.ResolveOwnedInterest(userID, interestID); err != nil {
		return err
	}

	return database.DB.Model(&user.Interest{}).
		Where("id = ?", interestID).
		Update("credit", credit).Error
}
