package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NotFoundError 表示请求引用的资源（用户或兴趣）在数据库中不存在。
// 边界层会将它映射为 404。
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound 构造一个NotFoundError。
func NewNotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// InvalidRequestError 表示请求在领域规则层面不合法：
// 枚举越界、游戏唯一性冲突、归属校验失败、负数credit、路径与请求体ID不一致等。
// 边界层会将它映射为 400。
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

// NewInvalidRequest 构造一个InvalidRequestError。
func NewInvalidRequest(format string, args ...any) error {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}

// ErrorResponse 定义了所有错误响应的统一JSON结构。
// Details 在领域错误下是请求描述符（uri=...)，
// 在请求体校验失败时则是 字段->消息 的映射。
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   any       `json:"details"`
}

// Respond 将一个错误按类别映射为HTTP状态码，并写出统一的错误体。
// 未识别的错误一律按500处理，消息原样透出。
func Respond(c *gin.Context, err error) {
	var notFound *NotFoundError
	var invalid *InvalidRequestError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	}

	c.JSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Message:   err.Error(),
		Details:   requestDescriptor(c),
	})
}

// RespondBindingError 处理gin请求体绑定失败。
// 校验器错误会被展开成 字段->消息 的映射；其余绑定错误（如JSON语法错误）按400透出。
func RespondBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[jsonFieldName(fieldError)] = messageForFieldError(fieldError)
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Timestamp: time.Now(),
			Message:   "Validation error",
			Details:   fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now(),
		Message:   "Malformed request body: " + err.Error(),
		Details:   requestDescriptor(c),
	})
}

func requestDescriptor(c *gin.Context) string {
	return "uri=" + c.Request.URL.Path
}

// jsonFieldName 把结构体字段名还原成API使用的小驼峰字段名。
func jsonFieldName(fieldError validator.FieldError) string {
	name := fieldError.Field()
	return strings.ToLower(name[:1]) + name[1:]
}

// messageForFieldError 根据失败的校验标签生成可读消息，
// 文案对齐原有API的字段级提示。
func messageForFieldError(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return field + " cannot be empty"
	case "min", "max":
		return field + " should have 2 to 45 characters"
	case "alphanum":
		return field + " can only consist of letter and number"
	case "oneof":
		return field + " should be one of " + fieldError.Param()
	case "gte":
		return field + " cannot be negative"
	default:
		return field + " is invalid"
	}
}
