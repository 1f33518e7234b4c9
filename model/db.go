package model

import "fmt"

type DBConfig struct {
	Host     string `ini:"host"`
	Port     int    `ini:"port"`
	User     string `ini:"user"`
	Password string `ini:"password"`
	Database string `ini:"database"`
}

// Configured 配置文件里没填[db]段就不入库
func (self *DBConfig) Configured() bool {
	return self.Host != ""
}

func (self *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?timeout=5s&loc=Local",
		self.User, self.Password, self.Host, self.Port, self.Database)
}
