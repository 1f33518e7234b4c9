package util

import (
	"time"

	"github.com/gookit/slog"
)

func TimeCost() func(str string) {
	//计算耗时
	bts := time.Now()
	return func(str string) {
		ms := time.Since(bts).Milliseconds()
		slog.Debugf("%s，耗时%dms", str, ms)
	}
}
