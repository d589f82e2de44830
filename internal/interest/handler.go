package interest

import (
	"net/http"
	"strconv"

	"github.com/SlpAus/game-match-backend/internal/user"
	"github.com/SlpAus/game-match-backend/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// --- 控制器函数 ---
// 请求体结构复用user包的InterestRequest，两组端点共享同一套字段约束。

// GetInterestByID 返回某用户的单条兴趣
func GetInterestByID(c *gin.Context) {
	userID, err := user.ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	interestID, err := user.ParseIDParam(c, "interestId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	interest, err := getInterestByInterestID(userID, interestID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, interest)
}

// CreateUserInterest 为用户新建一条兴趣
func CreateUserInterest(c *gin.Context) {
	userID, err := user.ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var body user.InterestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apperror.RespondBindingError(c, err)
		return
	}
	created, err := createUserInterest(userID, body.ToModel())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateUserInterest 就地更新兴趣的game/level/credit
func UpdateUserInterest(c *gin.Context) {
	userID, err := user.ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	interestID, err := user.ParseIDParam(c, "interestId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var body user.InterestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apperror.RespondBindingError(c, err)
		return
	}
	updated, err := updateUserInterestByInterestID(userID, interestID, body.ToModel())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUserInterest 删除某用户的单条兴趣
func DeleteUserInterest(c *gin.Context) {
	userID, err := user.ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	interestID, err := user.ParseIDParam(c, "interestId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if err := deleteUserInterestByInterestID(userID, interestID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interest deleted successfully"})
}

// UpdateInterestCredit 只更新credit字段，值来自query参数
func UpdateInterestCredit(c *gin.Context) {
	userID, err := user.ParseIDParam(c, "userId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	interestID, err := user.ParseIDParam(c, "interestId")
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	rawCredit := c.Query("credit")
	if rawCredit == "" {
		apperror.Respond(c, apperror.NewInvalidRequest("Required request parameter 'credit' is not present"))
		return
	}
	// 负数也要完成解析，由服务层给出领域语义的报错
	credit, err := strconv.Atoi(rawCredit)
	if err != nil {
		apperror.Respond(c, apperror.NewInvalidRequest("Invalid credit: %s", rawCredit))
		return
	}

	if err := updateUserInterestCreditByInterestID(userID, interestID, credit); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Credit updated successfully"})
}
