package config

import (
	"fmt"

	"awr-parser/model"

	"github.com/go-ini/ini"
)

var Global *Config

type Config struct {
	HttpPort   int            `ini:"http_port"`
	ArchiveDir string         `ini:"archive_dir"`
	DB         model.DBConfig `ini:"db"`
}

// Load 只有服务模式和入库模式需要配置文件，纯命令行解析不读它
func Load(fileName string) error {
	c, err := ini.Load(fileName)
	if err != nil {
		return fmt.Errorf("加载配置文件 '%s' 失败: %w", fileName, err)
	}

	Global = new(Config)
	if err := c.MapTo(Global); err != nil {
		return fmt.Errorf("映射配置信息失败: %w", err)
	}

	if Global.HttpPort == 0 {
		Global.HttpPort = 8080
	}
	if Global.ArchiveDir == "" {
		Global.ArchiveDir = "data"
	}
	return nil
}
