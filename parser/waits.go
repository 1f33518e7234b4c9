package parser

import (
	"fmt"
	"strings"

	"awr-parser/model"
)

// locateLayout 定宽段先找由横线组成的表头分隔行，限定行数内找不到就放弃本段
// 返回true表示布局已就绪，当前行可以按列切
func (self *Parser) locateLayout(line, section string) bool {
	if self.layout != nil {
		return true
	}
	if lay, err := resolveLayout(line); err == nil {
		self.layout = lay
		return false // 分隔行本身不含数据
	}
	self.bailout--
	if self.bailout <= 0 {
		self.abandon(section)
	}
	return false
}

// handleTop5 Top-N耗时事件，旧版"Top 5"和12c"Top 10 (foreground)"都只取前5行
func (self *Parser) handleTop5(line string) {
	if !self.locateLayout(line, "Top-N") {
		return
	}
	name := self.layout.slice(line, 0)
	if name == "" {
		return
	}

	if strings.HasPrefix(name, "CPU time") || name == "DB CPU" {
		// CPU行没有等待次数/平均值/类别，只有时间和占比
		t := &model.TopEvent{}
		self.setTop(self.rank, "name", &t.Name, name)
		self.setTop(self.rank, "time", &t.Time, cleanNumber(self.layout.slice(line, 2)))
		self.setTop(self.rank, "pct", &t.PctDBTime, cleanNumber(self.layout.slice(line, 4)))
		self.rec.Top[self.rank] = t
		self.rank++
	} else {
		waits := cleanNumber(self.layout.slice(line, 1))
		timeS := cleanNumber(self.layout.slice(line, 2))
		if waits == "" && timeS == "" {
			return // 事件名过长折行产生的续行
		}
		t := &model.TopEvent{}
		self.setTop(self.rank, "name", &t.Name, name)
		self.setTop(self.rank, "waits", &t.Waits, waits)
		self.setTop(self.rank, "time", &t.Time, timeS)
		avg := cleanNumber(self.layout.slice(line, 3))
		if avg == "" {
			avg = deriveAvgMs(timeS, waits)
		}
		self.setTop(self.rank, "avg", &t.AvgMs, avg)
		self.setTop(self.rank, "pct", &t.PctDBTime, cleanNumber(self.layout.slice(line, 4)))
		self.setTop(self.rank, "class", &t.Class, self.layout.slice(line, 5))
		self.rec.Top[self.rank] = t
		self.rank++
	}

	if self.rank >= len(self.rec.Top) {
		self.enterSearching()
	}
}

// handleWaitClass 前台等待类别段，10g叫"Wait Class"且没有%DB time列
func (self *Parser) handleWaitClass(line string) {
	if !self.locateLayout(line, "等待类别") {
		return
	}
	name := self.layout.slice(line, 0)
	if name == "" {
		return
	}

	if name == "DB CPU" {
		// 11g起本段的DB CPU伪行覆盖其他地方取到的CPU时间
		self.set(&self.rec.DBCPUTime, "db_cpu_time", cleanNumber(self.layout.slice(line, 3)))
		if self.layout.width() >= 6 {
			self.set(&self.rec.DBCPUPct, "db_cpu_pct", cleanNumber(self.layout.slice(line, 5)))
		}
		return
	}

	for _, wc := range model.AllWaitClasses {
		if !strings.HasPrefix(name, wc.ReportName()) {
			continue
		}
		st := self.rec.Class(wc)
		waits := cleanNumber(self.layout.slice(line, 1))
		timeS := cleanNumber(self.layout.slice(line, 3))
		self.setStat("class."+wc.Code(), st, waits, timeS)
		if self.rec.Format >= model.Format11 && self.layout.width() >= 6 {
			pct := cleanNumber(self.layout.slice(line, 5))
			if pct != "" {
				st.PctDBTime = &pct
			}
		}
		// 10g没有%DB time列，时间留给后处理按DB Time换算
		return
	}
}

func (self *Parser) handleFgWaitEvents(line string) {
	self.handleWaitEvents(line, model.ForegroundEvents, true)
}

func (self *Parser) handleBgWaitEvents(line string) {
	self.handleWaitEvents(line, model.BackgroundEvents, false)
}

// handleWaitEvents 具名等待事件段，只取白名单内的事件
func (self *Parser) handleWaitEvents(line string, allow []model.WaitEvent, foreground bool) {
	section := "后台等待事件"
	if foreground {
		section = "前台等待事件"
	}
	if !self.locateLayout(line, section) {
		return
	}
	name := self.layout.slice(line, 0)
	if name == "" {
		return
	}

	// 特征事件：cell开头说明底层是Exadata存储，ARCH/LNS等待说明启用了Data Guard
	if strings.HasPrefix(name, "cell ") {
		self.rec.Exadata = true
	}
	if strings.HasPrefix(name, "ARCH wait") || strings.HasPrefix(name, "LNS wait") {
		self.rec.DataGuard = true
	}

	for _, ev := range allow {
		if name != ev.ReportName() {
			continue
		}
		st := self.rec.Event(ev)
		waits := cleanNumber(self.layout.slice(line, 1))
		timeS := cleanNumber(self.layout.slice(line, 3))
		self.setStat("event."+name, st, waits, timeS)
		switch {
		case self.rec.Format >= model.Format11 && self.layout.width() >= 7:
			pct := cleanNumber(self.layout.slice(line, 6))
			if pct != "" {
				st.PctDBTime = &pct
			}
		case foreground && self.rec.Format == model.Format10:
			// 10g没有%DB time列，按 时间/(DB Time*60)*100 自己算
			if dbt, ok := parseDecPtr(self.rec.DBTimeMin); ok && !dbt.IsZero() {
				if t, ok2 := parseDec(timeS); ok2 {
					if s, ok3 := ratioStr(t, dbt.Mul(decSixty), decHundred, 1); ok3 {
						st.PctDBTime = &s
					}
				}
			}
		}
		return
	}
}

// setStat 等待次数和等待时间入槽，平均时延统一派生为 时间/次数*1000 毫秒
func (self *Parser) setStat(name string, st *model.WaitStats, waits, timeS string) {
	self.set(&st.Waits, name+".waits", waits)
	self.set(&st.Time, name+".time", timeS)
	self.set(&st.AvgMs, name+".avg", deriveAvgMs(timeS, waits))
}

// deriveAvgMs (时间/次数)*1000，3位小数；次数为0或不是数字时留空
func deriveAvgMs(timeS, waits string) string {
	w, ok := parseDec(waits)
	if !ok || w.IsZero() {
		return ""
	}
	t, ok := parseDec(timeS)
	if !ok {
		return ""
	}
	s, _ := ratioStr(t, w, decThousand, 3)
	return s
}

func (self *Parser) setTop(rank int, field string, dst **string, val string) {
	self.set(dst, fmt.Sprintf("top%d.%s", rank+1, field), val)
}
