package api

import (
	"dynastytrades/internal/logger"
	l3_service "dynastytrades/internal/service/l3"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	ValuationService l3_service.ValuationService
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "dynasty trade valuation"})
	})
	router.GET("/health", m.health)
	router.POST("/valuations", m.valuations)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
