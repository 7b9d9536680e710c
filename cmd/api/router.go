package main

import (
	"net/http"

	_ "house-recommendation-api/docs"
	"house-recommendation-api/internal/handler"
	"house-recommendation-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newRouter(recommendations *handler.RecommendationHandler, listings *handler.ListingHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/houses", listings.Browse)
	r.POST("/houses/refresh", listings.Refresh)

	r.GET("/recommendations", recommendations.Recommend)
	r.GET("/recommendations/export", recommendations.Export)
	r.GET("/recommendations/map", recommendations.Map)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
