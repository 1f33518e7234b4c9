package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"awr-parser/store"
	"awr-parser/util"

	"github.com/gin-gonic/gin"
)

// StartService 上传解析服务：收报告、返回解析结果、归档原文、汇总入库
func StartService(st *store.Store, port int, archiveDir string) {

	f, err := os.OpenFile("http.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	gin.DefaultWriter = f
	gin.DefaultErrorWriter = f

	r := gin.Default()

	r.Use(corsMiddleware())

	root := r.Group("/awr-parser")
	{
		api := root.Group("/api")
		{
			api.POST("/upload", UploadReport(st, archiveDir))
			api.GET("/reportList", GetReportList(st))
		}

		// 归档的原始报告，客户端支持br就直接回压缩流
		root.GET("/data/:date/:filename", func(c *gin.Context) {
			date := c.Param("date")
			filename := c.Param("filename") + ".br"

			filePath := filepath.Join(archiveDir, date, filename)

			if _, err := os.Stat(filePath); os.IsNotExist(err) {
				c.String(http.StatusNotFound, "File not found")
				return
			}

			acceptEncoding := c.GetHeader("Accept-Encoding")
			if !strings.Contains(acceptEncoding, "br") {
				// 不支持br的客户端，解压后回明文
				data, err := util.LoadBrotli(filePath)
				if err != nil {
					c.String(http.StatusInternalServerError, err.Error())
					return
				}
				c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
				return
			}

			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Content-Encoding", "br")
			c.Header("Cache-Control", "public, max-age=60") // 缓存一分钟

			c.File(filePath)
		})
	}

	r.Run(fmt.Sprintf(":%d", port))
}

// 跨域中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
