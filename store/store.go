package store

import (
	"context"
	"time"

	"awr-parser/model"
	"awr-parser/util"

	"gorm.io/gorm"
)

// Store 解析结果的汇总行入库
type Store struct {
	DB *gorm.DB
}

func New(cfg *model.DBConfig) (*Store, error) {
	db, err := util.NewMysqlORM(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Save 一个报告文件写一行汇总
func (self *Store) Save(rec *model.ReportRecord) error {
	sum := model.NewReportSummary(rec)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	return self.DB.WithContext(ctx).Create(sum).Error
}

// List 按时间窗口取汇总行
func (self *Store) List(start, end time.Time) ([]model.ReportSummary, error) {
	var list []model.ReportSummary
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := self.DB.WithContext(ctx).
		Where("create_time BETWEEN ? AND ?", start.Format("2006-01-02 15:04:05"), end.Format("2006-01-02 15:04:05")).
		Order("create_time").
		Find(&list).Error
	return list, err
}
