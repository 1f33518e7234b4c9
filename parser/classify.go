package parser

import (
	"bufio"
	"os"
	"strings"
)

// FileKind 输入文件的分类结果
type FileKind int

const (
	KindTextReport FileKind = iota // 纯文本AWR报告，可以解析
	KindHTML                       // HTML格式报告
	KindForeign                    // 其他工具的报告（statspack）
	KindUnrecognized
)

func (k FileKind) String() string {
	switch k {
	case KindTextReport:
		return "text report"
	case KindHTML:
		return "html"
	case KindForeign:
		return "statspack"
	}
	return "unrecognized"
}

// Classify 只看文件前5行判断类型，只有纯文本AWR报告才进入解析
func Classify(path string) (FileKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnrecognized, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; i < 5 && sc.Scan(); i++ {
		line := sc.Text()
		if strings.Contains(strings.ToLower(line), "<html") {
			return KindHTML, nil
		}
		if strings.Contains(line, "STATSPACK report") {
			return KindForeign, nil
		}
		if strings.Contains(line, "WORKLOAD REPOSITORY report") {
			return KindTextReport, nil
		}
	}
	if err := sc.Err(); err != nil {
		return KindUnrecognized, err
	}
	return KindUnrecognized, nil
}
