package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// 🔵 GET /
//
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "velora_back_end",
		"status":  "ok",
	})
}
