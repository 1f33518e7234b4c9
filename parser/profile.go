package parser

import (
	"strings"

	"awr-parser/model"

	"github.com/gookit/slog"
	"github.com/shopspring/decimal"
)

var (
	decOne      = decimal.NewFromInt(1)
	decSixty    = decimal.NewFromInt(60)
	decHundred  = decimal.NewFromInt(100)
	decThousand = decimal.NewFromInt(1000)
	decKiB      = decimal.NewFromInt(1 << 10)
	decMiB      = decimal.NewFromInt(1 << 20)
	decGiB      = decimal.NewFromInt(1 << 30)
)

// handleProfile 报告头部：库/实例标识、主机行、快照窗口、Load Profile、块大小
// 各值按严格的报告顺序出现，且只出现一次；见到"Instance Efficiency"标题本段结束
func (self *Parser) handleProfile(line string) {
	trimmed := strings.TrimSpace(line)
	f := self.fields

	switch {
	case strings.HasPrefix(line, "Instance Efficiency"):
		self.enterSection(stInstanceEfficiency, 1)

	case strings.HasPrefix(line, "DB Name"):
		// 11g起表头多出"Startup Time"列，借此区分10g和更高版本
		if self.rec.Format == model.FormatUnknown {
			if strings.Contains(line, "Startup Time") {
				self.rec.Format = model.Format11
			} else {
				self.rec.Format = model.Format10
			}
			slog.Tracef("[%s] 识别格式代: %s", self.rec.Filename, self.rec.Format)
		}
		self.dbAwait = true

	case self.dbAwait:
		if strings.HasPrefix(trimmed, "-") {
			return // 表头下划线
		}
		self.dbAwait = false
		self.parseDBRow(f)

	case strings.HasPrefix(line, "Host Name"):
		self.hostStage = 1

	case self.hostStage == 1:
		// 主机名和OS名可能含空格，得按分隔行算出的定宽列切
		if lay, err := resolveLayout(line); err == nil {
			self.hostSep = lay
			self.hostStage = 2
		} else {
			self.hostStage = 0
		}

	case self.hostStage == 2:
		self.parseHostRow(line)
		self.hostStage = 0

	case strings.HasPrefix(trimmed, "Begin Snap:"):
		if len(f) >= 5 {
			self.set(&self.rec.BeginSnap, "begin_snap", cleanNumber(f[2]))
			self.set(&self.rec.BeginTime, "begin_time", f[3]+" "+f[4])
		}

	case strings.HasPrefix(trimmed, "End Snap:"):
		if len(f) >= 5 {
			self.set(&self.rec.EndSnap, "end_snap", cleanNumber(f[2]))
			self.set(&self.rec.EndTime, "end_time", f[3]+" "+f[4])
		}

	case strings.HasPrefix(trimmed, "Elapsed:"):
		if len(f) >= 2 {
			self.set(&self.rec.ElapsedMin, "elapsed_min", cleanNumber(f[1]))
		}

	case strings.HasPrefix(trimmed, "DB Time:"):
		if len(f) >= 3 {
			self.set(&self.rec.DBTimeMin, "db_time_min", cleanNumber(f[2]))
		}
		self.calcAvgActSess()

	case strings.Contains(line, "Std Block Size:"):
		self.parseBlockSize(f)

	case strings.HasPrefix(trimmed, "Redo size"):
		self.parseRedo(trimmed, f)

	case strings.HasPrefix(trimmed, "Logical read"):
		// 11g"Logical reads:"，12c"Logical read (blocks):"
		self.set(&self.rec.LogicalReads, "logical_reads", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "Block changes:"):
		self.set(&self.rec.BlockChanges, "block_changes", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "User calls:"):
		self.set(&self.rec.UserCalls, "user_calls", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "Hard parses"):
		self.set(&self.rec.HardParses, "hard_parses", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "Parses"):
		self.set(&self.rec.Parses, "parses", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "Logons:"):
		self.set(&self.rec.Logons, "logons", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "Executes"):
		self.set(&self.rec.Executes, "executes", valueAfterLabel(f))

	case strings.HasPrefix(trimmed, "Transactions:"):
		self.set(&self.rec.Transactions, "transactions", valueAfterLabel(f))

	case strings.Contains(line, "In-memory Sort %"):
		self.parseEfficiencyLine(f)
	}
}

// handleInstanceEfficiency 用另一种排版再取一次命中率，取到即离开本段
func (self *Parser) handleInstanceEfficiency(line string) {
	if strings.Contains(line, "In-memory Sort %") {
		self.parseEfficiencyLine(self.fields)
		self.enterSearching()
	}
}

// handleCacheSizes 12c的Cache Sizes段，只取标准块大小
func (self *Parser) handleCacheSizes(line string) {
	if strings.Contains(line, "Std Block Size:") {
		self.parseBlockSize(self.fields)
	}
}

// parseDBRow 库标识行，11g起因Startup Time列偏移不同
func (self *Parser) parseDBRow(f []string) {
	if self.rec.Format >= model.Format11 {
		if len(f) >= 8 {
			self.set(&self.rec.DBName, "db_name", f[0])
			self.set(&self.rec.InstName, "inst_name", f[2])
			self.set(&self.rec.InstNum, "inst_num", f[3])
			self.set(&self.rec.Version, "version", f[6])
			self.set(&self.rec.Cluster, "cluster", f[7])
		}
		return
	}
	if len(f) >= 6 {
		self.set(&self.rec.DBName, "db_name", f[0])
		self.set(&self.rec.InstName, "inst_name", f[2])
		self.set(&self.rec.InstNum, "inst_num", f[3])
		self.set(&self.rec.Version, "version", f[4])
		self.set(&self.rec.Cluster, "cluster", f[5])
	}
}

// parseHostRow 主机行按定宽列切：主机名、平台、CPU数，内存在最后一列
func (self *Parser) parseHostRow(line string) {
	lay := self.hostSep
	if lay == nil {
		return
	}
	self.set(&self.rec.Hostname, "hostname", lay.slice(line, 0))
	self.set(&self.rec.HostOS, "host_os", lay.slice(line, 1))
	self.set(&self.rec.CPUCount, "cpu_count", cleanNumber(lay.slice(line, 2)))
	self.set(&self.rec.MemoryGB, "memory_gb", cleanNumber(lay.slice(line, lay.width()-1)))
}

// parseRedo Redo size行，单位字节/秒，可能是科学计数法
// 12c起标签多了"(bytes)"且值的位置后移，借此识别12c并把段结束线宽度换成54
func (self *Parser) parseRedo(trimmed string, f []string) {
	var val string
	if strings.HasPrefix(trimmed, "Redo size (bytes):") {
		if self.rec.Format != model.Format12 {
			self.rec.Format = model.Format12
			self.termWidth = termWidth12
			slog.Tracef("[%s] 识别格式代: %s", self.rec.Filename, self.rec.Format)
		}
		if len(f) >= 4 {
			val = f[3]
		}
	} else if strings.HasPrefix(trimmed, "Redo size:") {
		if len(f) >= 3 {
			val = f[2]
		}
	}
	d, ok := parseDec(val)
	if !ok {
		return
	}
	if s, ok := ratioStr(d, decMiB, decOne, 2); ok {
		self.set(&self.rec.RedoMBps, "redo_mbps", s)
	}
}

// parseBlockSize "Std Block Size: 8K"，换算成字节数
func (self *Parser) parseBlockSize(f []string) {
	for i := len(f) - 1; i > 0; i-- {
		if f[i] != "Size:" || i+1 >= len(f) {
			continue
		}
		v := f[i+1]
		mult := decOne
		switch {
		case strings.HasSuffix(v, "K"):
			mult = decKiB
			v = strings.TrimSuffix(v, "K")
		case strings.HasSuffix(v, "M"):
			mult = decMiB
			v = strings.TrimSuffix(v, "M")
		}
		if d, ok := parseDec(v); ok {
			self.set(&self.rec.BlockSize, "block_size", d.Mul(mult).String())
		}
		return
	}
}

// parseEfficiencyLine 命中率行，两个值在同一行："Buffer  Hit   %:  99.98  In-memory Sort %: 100.00"
func (self *Parser) parseEfficiencyLine(f []string) {
	var vals []string
	for i, w := range f {
		if w == "%:" && i+1 < len(f) {
			vals = append(vals, cleanNumber(f[i+1]))
		}
	}
	if len(vals) >= 2 {
		self.set(&self.rec.BufferHitRatio, "buffer_hit_ratio", vals[0])
		self.set(&self.rec.InMemSortRatio, "in_mem_sort_ratio", vals[1])
	}
}

// calcAvgActSess 平均活动会话数 = DB Time / Elapsed
func (self *Parser) calcAvgActSess() {
	dbt, ok1 := parseDecPtr(self.rec.DBTimeMin)
	ela, ok2 := parseDecPtr(self.rec.ElapsedMin)
	if !ok1 || !ok2 {
		return
	}
	if ela.IsZero() {
		slog.Debugf("[%s] 快照窗口时长为0，无法计算平均活动会话数", self.rec.Filename)
		return
	}
	if s, ok := ratioStr(dbt, ela, decOne, 1); ok {
		self.set(&self.rec.AvgActSess, "avg_act_sess", s)
	}
}

// valueAfterLabel Load Profile行：取第一个以冒号结尾的词后面那个值
func valueAfterLabel(f []string) string {
	for i, w := range f {
		if strings.HasSuffix(w, ":") {
			if i+1 < len(f) {
				return cleanNumber(f[i+1])
			}
			return ""
		}
	}
	return ""
}

func parseDecPtr(p *string) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Zero, false
	}
	return parseDec(*p)
}
