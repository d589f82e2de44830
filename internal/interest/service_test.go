package interest

import (
	"path/filepath"
	"testing"

	"github.com/SlpAus/game-match-backend/internal/platform/database"
	"github.com/SlpAus/game-match-backend/internal/user"
	"github.com/SlpAus/game-match-backend/pkg/apperror"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &user.Interest{}))
	database.DB = db
}

func seedUser(t *testing.T, name string, interests ...user.Interest) *user.User {
	t.Helper()
	u := &user.User{
		Name:      name,
		Gender:    user.GenderMale,
		Nickname:  name,
		Geography: user.GeographyUSA,
		Interests: interests,
	}
	require.NoError(t, database.DB.Create(u).Error)
	return u
}

func requireInvalidRequest(t *testing.T, err error) *apperror.InvalidRequestError {
	t.Helper()
	var invalid *apperror.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	return invalid
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetInterestByInterestID(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})
	stranger := seedUser(t, "Other1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})

	found, err := getInterestByInterestID(owner.ID, owner.Interests[0].ID)
	require.NoError(t, err)
	require.Equal(t, user.GameDota, found.Game)

	_, err = getInterestByInterestID(owner.ID, 999)
	requireNotFound(t, err)

	_, err = getInterestByInterestID(owner.ID, stranger.Interests[0].ID)
	requireInvalidRequest(t, err)
}

func TestCreateUserInterest(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1")

	created, err := createUserInterest(owner.ID, user.Interest{Game: user.GameDota, Level: user.LevelNoob})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, owner.ID, created.UserID)
	require.Zero(t, created.Credit)
}

func TestCreateUserInterestUserNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := createUserInterest(77, user.Interest{Game: user.GameDota, Level: user.LevelNoob})
	requireNotFound(t, err)
}

func TestCreateUserInterestRejectsDuplicateGame(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})

	_, err := createUserInterest(owner.ID, user.Interest{Game: user.GameDota, Level: user.LevelPro})
	invalid := requireInvalidRequest(t, err)
	require.Equal(t, "User already has interest with game: dota", invalid.Message)
}

func TestCreateUserInterestWithExistingIDActsAsUpdate(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})
	existingID := owner.Interests[0].ID

	// 携带已有ID的请求绕过唯一性检查，落为一次就地更新
	saved, err := createUserInterest(owner.ID, user.Interest{
		ID:    existingID,
		Game:  user.GameDota,
		Level: user.LevelInvincible,
	})
	require.NoError(t, err)
	require.Equal(t, existingID, saved.ID)

	var count int64
	require.NoError(t, database.DB.Model(&user.Interest{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateUserInterestIDMismatchCheckedFirst(t *testing.T) {
	setupTestDB(t)

	// 用户和兴趣都不存在，但ID不一致的检查先于任何查找
	_, err := updateUserInterestByInterestID(55, 10, user.Interest{
		ID:    11,
		Game:  user.GameDota,
		Level: user.LevelNoob,
	})
	invalid := requireInvalidRequest(t, err)
	require.Equal(t, "The interest has a different interestId: 11 from path variable: 10", invalid.Message)
}

func TestUpdateUserInterestNotFound(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})

	_, err := updateUserInterestByInterestID(999, owner.Interests[0].ID, user.Interest{
		ID:    owner.Interests[0].ID,
		Game:  user.GameDota,
		Level: user.LevelNoob,
	})
	requireNotFound(t, err)

	_, err = updateUserInterestByInterestID(owner.ID, 999, user.Interest{
		ID:    999,
		Game:  user.GameDota,
		Level: user.LevelNoob,
	})
	requireNotFound(t, err)
}

func TestUpdateUserInterestGameConflict(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1",
		user.Interest{Game: user.GameDota, Level: user.LevelNoob},
		user.Interest{Game: user.GameFortnite, Level: user.LevelPro})
	target := owner.Interests[0]

	// 改到已被另一条兴趣占用的game上
	_, err := updateUserInterestByInterestID(owner.ID, target.ID, user.Interest{
		ID:    target.ID,
		Game:  user.GameFortnite,
		Level: user.LevelNoob,
	})
	invalid := requireInvalidRequest(t, err)
	require.Equal(t, "User already has interest with game: fortnite", invalid.Message)
}

func TestUpdateUserInterestKeepingGameNeverConflicts(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob, Credit: 1})
	target := owner.Interests[0]

	updated, err := updateUserInterestByInterestID(owner.ID, target.ID, user.Interest{
		ID:     target.ID,
		Game:   user.GameDota,
		Level:  user.LevelInvincible,
		Credit: 9,
	})
	require.NoError(t, err)
	require.Equal(t, user.GameDota, updated.Game)
	require.Equal(t, user.LevelInvincible, updated.Level)
	require.Equal(t, 9, updated.Credit)
	require.Equal(t, target.ID, updated.ID)
	require.Equal(t, owner.ID, updated.UserID)
}

func TestUpdateUserInterestToFreeGame(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})
	target := owner.Interests[0]

	updated, err := updateUserInterestByInterestID(owner.ID, target.ID, user.Interest{
		ID:    target.ID,
		Game:  user.GameAmongUs,
		Level: user.LevelNoob,
	})
	require.NoError(t, err)
	require.Equal(t, user.GameAmongUs, updated.Game)
}

func TestDeleteUserInterest(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})
	stranger := seedUser(t, "Other1", user.Interest{Game: user.GameDota, Level: user.LevelNoob})

	require.NoError(t, deleteUserInterestByInterestID(owner.ID, owner.Interests[0].ID))

	var count int64
	require.NoError(t, database.DB.Model(&user.Interest{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	require.Zero(t, count)

	// 删除别人的兴趣被拒绝
	err := deleteUserInterestByInterestID(owner.ID, stranger.Interests[0].ID)
	requireInvalidRequest(t, err)
}

func TestUpdateCreditRejectsNegativeBeforeLookups(t *testing.T) {
	setupTestDB(t)

	// 用户不存在也先报负数错误
	err := updateUserInterestCreditByInterestID(404, 404, -1)
	invalid := requireInvalidRequest(t, err)
	require.Equal(t, "Credit should be zero or positive", invalid.Message)
}

func TestUpdateCreditTargetedWrite(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "Owner1", user.Interest{Game: user.GameDota, Level: user.LevelPro, Credit: 5})
	target := owner.Interests[0]

	// credit为0是合法的
	require.NoError(t, updateUserInterestCreditByInterestID(owner.ID, target.ID, 0))

	var reloaded user.Interest
	require.NoError(t, database.DB.First(&reloaded, target.ID).Error)
	require.Zero(t, reloaded.Credit)
	// 只动credit，game/level原样保留
	require.Equal(t, user.GameDota, reloaded.Game)
	require.Equal(t, user.LevelPro, reloaded.Level)
}
