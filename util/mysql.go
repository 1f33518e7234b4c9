package util

import (
	"awr-parser/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func NewMysqlORM(cfg *model.DBConfig) (*gorm.DB, error) {
	config := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NamingStrategy:         schema.NamingStrategy{SingularTable: true},
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), config)
	if err != nil {
		return nil, err
	}

	return db, nil
}
