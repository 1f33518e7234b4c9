package parser

import (
	"fmt"
	"strings"
)

// colRange 一列占据的字符区间，含start不含end
type colRange struct {
	start, end int
}

// layout 由表头分隔行算出的列布局
// 报告的定宽段落用它切列，列头文字长度变了也不受影响
type layout struct {
	cols []colRange
}

// resolveLayout 解析由6~7段横线组成的表头分隔行
// 段数不对或混入其他字符时返回错误，调用方按"本段放弃"处理
func resolveLayout(line string) (*layout, error) {
	l := &layout{}
	i := 0
	for i < len(line) {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && line[i] == '-' {
			i++
		}
		if i == start {
			return nil, fmt.Errorf("分隔行包含非横线字符: %q", line[i])
		}
		l.cols = append(l.cols, colRange{start, i})
	}
	if len(l.cols) < 6 || len(l.cols) > 7 {
		return nil, fmt.Errorf("分隔行列数异常: %d", len(l.cols))
	}
	return l, nil
}

// width 列数
func (self *layout) width() int { return len(self.cols) }

// slice 按列布局截取第i列，去掉两侧空白；最后一列吃到行尾
func (self *layout) slice(line string, i int) string {
	if i < 0 || i >= len(self.cols) {
		return ""
	}
	c := self.cols[i]
	if c.start >= len(line) {
		return ""
	}
	end := c.end
	if i == len(self.cols)-1 || end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[c.start:end])
}
