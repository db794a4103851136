package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery middleware для обработки паник и предотвращения краша приложения.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		method := c.Request.Method
		path := c.Request.URL.Path
		clientIP := c.ClientIP()

		log.Printf("[PANIC] %s %s from %s: %v\n", method, path, clientIP, recovered)

		// В production режиме не показываем детали ошибки
		errorMessage := "Внутренняя ошибка сервера"
		if gin.Mode() == gin.DebugMode {
			errorMessage = fmt.Sprintf("%v", recovered)
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": errorMessage,
		})

		c.Abort()
	})
}
