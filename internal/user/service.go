package user

import (
	"fmt"
	"strings"

	"github.com/SlpAus/game-match-backend/internal/platform/database"
	"github.com/SlpAus/game-match-backend/pkg/apperror"
	"gorm.io/gorm"
)

// 服务层承载全部领域规则：枚举成员校验、同一用户游戏唯一性、
// 跨实体归属校验，以及两条匹配查询的编排。

// getAllUsers 返回全部用户。
func getAllUsers() ([]User, error) {
	return findAllUsers()
}

// getUserByID 返回单个用户，不存在时报NotFound。
func getUserByID(userID uint) (*User, error) {
	return ResolveUser(userID)
}

// createUser 注册一个新用户，可以携带初始兴趣集合。
// 规则：初始兴趣之间game不允许重复。
// 用户与兴趣的多行写入放在同一个事务中，避免崩溃后留下半注册的用户。
func createUser(candidate *User) (*User, error) {
	seen := make(map[Game]struct{}, len(candidate.Interests))
	for _, interest := range candidate.Interests {
		if _, dup := seen[interest.Game]; dup {
			return nil, apperror.NewInvalidRequest("User has different interests with same game")
		}
		seen[interest.Game] = struct{}{}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(candidate).Error
	})
	if err != nil {
		return nil, err
	}

	// 重新加载，把生成的用户ID和兴趣ID一并返回
	return ResolveUser(candidate.ID)
}

// updateUserByID 只覆盖四个画像字段，兴趣集合不经过本路径更新。
func updateUserByID(userID uint, candidate *User) (*User, error) {
	existing, err := ResolveUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":      candidate.Name,
		"gender":    candidate.Gender,
		"nickname":  candidate.Nickname,
		"geography": candidate.Geography,
	}
	if err := database.DB.Model(existing).Updates(updates).Error; err != nil {
		return nil, err
	}

	return ResolveUser(userID)
}

// deleteUserByID 删除用户并级联删除其全部兴趣。
// 兴趣先删、用户后删，两步在同一个事务里，不依赖存储引擎的外键级联。
func deleteUserByID(userID uint) error {
	if _, err := ResolveUser(userID); err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&Interest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, userID).Error
	})
}

// getMatchUserByGameAndLevelAndGeography 返回拥有 (game, level) 兴趣
// 且地区等于geography的全部用户。
func getMatchUserByGameAndLevelAndGeography(game, level, geography string) ([]User, error) {
	if err := checkGameAndLevelAndGeography(&game, &level, &geography); err != nil {
		return nil, err
	}
	return findMatchUsers(Game(game), Level(level), Geography(geography))
}

// getOtherUserMatchUserInterest 以用户自己的某条兴趣为条件做匹配，
// 并把发起匹配的用户本人从结果中剔除。
func getOtherUserMatchUserInterest(userID, interestID uint) ([]User, error) {
	owner, err := ResolveUser(userID)
	if err != nil {
		return nil, err
	}
	interest, err := ResolveOwnedInterest(userID, interestID)
	if err != nil {
		return nil, err
	}

	matches, err := findMatchUsers(interest.Game, interest.Level, owner.Geography)
	if err != nil {
		return nil, err
	}

	others := make([]User, 0, len(matches))
	for _, match := range matches {
		if match.ID != userID {
			others = append(others, match)
		}
	}
	return others, nil
}

// getUserWithMaxCreditByGameAndLevel 返回在 (game, level) 下
// credit达到最大值的全部用户，并列者都在内。
func getUserWithMaxCreditByGameAndLevel(game, level string) ([]User, error) {
	if err := checkGameAndLevelAndGeography(&game, &level, nil); err != nil {
		return nil, err
	}
	return findUsersWithMaxCredit(Game(game), Level(level))
}

// checkGameAndLevelAndGeography 校验三个可选的枚举输入。
// 所有越界项累积到同一条消息里（以"; "连接），而不是在第一个错误处提前返回。
func checkGameAndLevelAndGeography(game, level, geography *string) error {
	var violations []string
	if game != nil && !Game(*game).Valid() {
		violations = append(violations,
			fmt.Sprintf("Invalid game: %s and it should be one of %s", *game, enumList(AllGames)))
	}
	if level != nil && !Level(*level).Valid() {
		violations = append(violations,
			fmt.Sprintf("Invalid level: %s and it should be one of %s", *level, enumList(AllLevels)))
	}
	if geography != nil && !Geography(*geography).Valid() {
		violations = append(violations,
			fmt.Sprintf("Invalid geography: %s and it should be one of %s", *geography, enumList(AllGeographies)))
	}
	if len(violations) > 0 {
		return apperror.NewInvalidRequest("%s", strings.Join(violations, "; "))
	}
	return nil
}

// ResolveUser 按ID加载用户，不存在时报NotFound。
// interest模块的归属校验也依赖本函数。
func ResolveUser(userID uint) (*User, error) {
	u, err := findUserByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewNotFound("User cannot be found with id: %d", userID)
	}
	return u, nil
}

// ResolveOwnedInterest 按ID加载兴趣并校验归属：
// 兴趣不存在时报NotFound，兴趣不属于该用户时报InvalidRequest。
func ResolveOwnedInterest(userID, interestID uint) (*Interest, error) {
	interest, err := findInterestByID(interestID)
	if err != nil {
		return nil, err
	}
	if interest == nil {
		return nil, apperror.NewNotFound("Interest cannot be found with id: %d", interestID)
	}
	if interest.UserID != userID {
		return nil, apperror.NewInvalidRequest(
			"User with userId: %d does not have the interest with interestId : %d", userID, interestID)
	}
	return interest, nil
}
