package utils

import (
	"github.com/gin-gonic/gin"
)

type M map[string]interface{}

func ResponseHelper(m M) gin.H {
	return gin.H{
		"code":  SUCCESS,
		"data":  m,
		"error": "",
	}
}

// ErrorHelper builds the error envelope. Only the generic message for the
// code is exposed; callers log the underlying error themselves.
func ErrorHelper(statusCode int) gin.H {
	return gin.H{
		"error": Message(statusCode),
		"code":  statusCode,
		"data":  "",
	}
}

func SetData(key string, val interface{}) M {
	return M{
		key: val,
	}
}

func SuccessResp() M {
	return SetData("status", "success")
}
