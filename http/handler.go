package http

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"awr-parser/emit"
	"awr-parser/model"
	"awr-parser/parser"
	"awr-parser/store"
	"awr-parser/util"

	"github.com/gin-gonic/gin"
	"github.com/gookit/slog"
)

type QueryParams struct {
	StartTime *string `form:"start_time"`
	EndTime   *string `form:"end_time"`
}

// UploadReport 上传一个AWR文本报告：分类、解析、归档原文、汇总入库，返回解析结果
// format=csv 返回表头加一行数据，默认返回json汇总
func UploadReport(st *store.Store, archiveDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer util.TimeCost()("解析上传报告")

		fh, err := c.FormFile("report")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "缺少report文件字段"})
			return
		}

		// 先落临时文件，分类和解析都按路径读
		tmp, err := os.CreateTemp("", "awr-upload-*")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)

		if err := c.SaveUploadedFile(fh, tmpPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		kind, err := parser.Classify(tmpPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if kind != parser.KindTextReport {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("不是AWR文本报告: %s", kind)})
			return
		}

		rec, err := parser.Parse(tmpPath, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		rec.Filename = fh.Filename
		if errs := parser.Finalize(rec); errs > 0 {
			slog.Infof("报告%s解析有%d处缺失", fh.Filename, errs)
		}

		archiveReport(archiveDir, fh.Filename, tmpPath)

		if st != nil {
			if err := st.Save(rec); err != nil {
				slog.Errorf("保存汇总行失败: %v", err)
			}
		}

		if c.Query("format") == "csv" {
			var buf bytes.Buffer
			emit.Header(&buf)
			emit.Row(&buf, rec)
			c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
			return
		}

		c.JSON(http.StatusOK, model.NewReportSummary(rec))
	}
}

// 原始报告按年月目录压缩归档，失败只记日志不影响响应
func archiveReport(archiveDir, filename, srcPath string) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		slog.Errorf("读取报告失败: %v", err)
		return
	}

	dir := filepath.Join(archiveDir, time.Now().Format("200601"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Errorf("创建归档目录失败: %v", err)
		return
	}

	if err := util.SaveBrotli(filepath.Join(dir, filename+".br"), data); err != nil {
		slog.Errorf("归档报告失败: %v", err)
	}
}

// GetReportList 按时间窗口取入库的汇总行，默认最近24小时
func GetReportList(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "未配置结果库"})
			return
		}

		var params QueryParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		end := time.Now()
		start := end.Add(-24 * time.Hour)
		layout := "2006-01-02 15:04:05"

		if params.StartTime != nil {
			t, err := time.ParseInLocation(layout, *params.StartTime, time.Local)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start_time格式错误"})
				return
			}
			start = t
		}
		if params.EndTime != nil {
			t, err := time.ParseInLocation(layout, *params.EndTime, time.Local)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end_time格式错误"})
				return
			}
			end = t
		}

		list, err := st.List(start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}
