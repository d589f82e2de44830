package user

import (
	"net/http"
	"strconv"

	"github.com/SlpAus/game-match-backend/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// UserRequest 定义了创建/更新用户时请求体的JSON结构。
// 字段级约束由gin的binding校验器执行，失败时以 字段->消息 映射返回400。
type UserRequest struct {
	Name        string            `json:"name" binding:"required,min=2,max=45,alphanum"`
	Gender      string            `json:"gender" binding:"required,oneof=male female"`
	Nickname    string            `json:"nickname" binding:"required,min=2,max=45,alphanum"`
	Geography   string            `json:"geography" binding:"required,oneof=Europe Asia USA"`
	InterestSet []InterestRequest `json:"interestSet" binding:"omitempty,dive"`
}

// InterestRequest 定义了创建/更新兴趣时请求体的JSON结构。
// interest模块的端点复用同一个结构。
type InterestRequest struct {
	InterestID uint   `json:"interestId"`
	Game       string `json:"game" binding:"required,oneof='fortnite' 'call of duty' 'dota' 'valhalla' 'among us'"`
	Level      string `json:"level" binding:"required,oneof=noob pro invincible"`
	Credit     *int   `json:"credit" binding:"omitempty,gte=0"`
}

// ToModel 把请求体转换为持久化模型，credit缺省为0。
func (r InterestRequest) ToModel() Interest {
	credit := 0
	if r.Credit != nil {
		credit = *r.Credit
	}
	return Interest{
		ID:     r.InterestID,
		Game:   Game(r.Game),
		Level:  Level(r.Level),
		Credit: credit,
	}
}

func (r UserRequest) toModel() *User {
	u := &User{
		Name:      r.Name,
		Gender:    Gender(r.Gender),
		Nickname:  r.Nickname,
		Geography: Geography(r.Geography),
	}
	for _, interest := range r.InterestSet {
		u.Interests = append(u.Interests, interest.ToModel())
	}
	return u
}

// ParseIDParam 把路径参数解析为数据库主键，解析失败报InvalidRequest。
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidRequest("Invalid %s: %s", name, raw)
	}
	return uint(id), nil
}

// RequireQuery 读取必填的query参数，缺失时报InvalidRequest。
func RequireQuery(c *gin.Context, name string) (string, error) {
	value := c.Query(name)
	if value == "" {
		return "", apperror.NewInvalidRequest("Required request parameter '%s' is not present", name)
	}
	return value, nil
}

// --- 控制器函数 ---

// GetAllUsers 返回全部用户
func GetAllUsers(c *gin.Context) {
	users, err := getAllUsers()
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID 根据ID返回单个用户
func GetUserByID(c *gin.Context) {
	userID, err := ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	u, err := getUserByID(userID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreateUser 注册新用户，可携带初始兴趣集合
func CreateUser(c *gin.Context) {
	var body UserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apperror.RespondBindingError(c, err)
		return
	}
	created, err := createUser(body.toModel())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateUserByID 只更新四个画像字段，兴趣集合不受影响
func UpdateUserByID(c *gin.Context) {
	userID, err := ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var body UserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apperror.RespondBindingError(c, err)
		return
	}
	updated, err := updateUserByID(userID, body.toModel())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUserByID 删除用户及其全部兴趣
func DeleteUserByID(c *gin.Context) {
	userID, err := ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if err := deleteUserByID(userID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetMatchUsers 按 game+level+geography 查询匹配用户
func GetMatchUsers(c *gin.Context) {
	game, err := RequireQuery(c, "game")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	level, err := RequireQuery(c, "level")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	geography, err := RequireQuery(c, "geography")
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	users, err := getMatchUserByGameAndLevelAndGeography(game, level, geography)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetOtherUserMatches 以用户的某条兴趣为条件匹配其他用户
func GetOtherUserMatches(c *gin.Context) {
	userID, err := ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	interestID, err := ParseIDParam(c, "interestId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	users, err := getOtherUserMatchUserInterest(userID, interestID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUsersWithMaxCredit 返回 (game, level) 下credit最大的用户，含并列
func GetUsersWithMaxCredit(c *gin.Context) {
	game, err := RequireQuery(c, "game")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	level, err := RequireQuery(c, "level")
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	users, err := getUserWithMaxCreditByGameAndLevel(game, level)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
