package parser

import (
	"strings"
)

// handleTimeModel 10g的Time Model Statistics，只取DB CPU一行
// 11g起CPU时间在前台等待类别段里取，本段被整段跳过
func (self *Parser) handleTimeModel(line string) {
	if !strings.HasPrefix(line, "DB CPU") {
		return
	}
	f := self.fields
	if len(f) >= 4 {
		self.set(&self.rec.DBCPUTime, "db_cpu_time", cleanNumber(f[2]))
		self.set(&self.rec.DBCPUPct, "db_cpu_pct", cleanNumber(f[3]))
	}
}

// handleOSStats 操作系统统计，原始计数单位是百分之一秒，不做换算
func (self *Parser) handleOSStats(line string) {
	f := self.fields
	if len(f) < 2 {
		return
	}
	val := cleanNumber(f[1])
	switch f[0] {
	case "BUSY_TIME":
		self.set(&self.rec.OSBusyTime, "os_busy_time", val)
	case "IDLE_TIME":
		self.set(&self.rec.OSIdleTime, "os_idle_time", val)
	case "IOWAIT_TIME":
		self.set(&self.rec.OSIOWaitTime, "os_iowait_time", val)
	case "SYS_TIME":
		self.set(&self.rec.OSSysTime, "os_sys_time", val)
	case "USER_TIME":
		self.set(&self.rec.OSUserTime, "os_user_time", val)
	case "OS_CPU_WAIT_TIME":
		self.set(&self.rec.OSCPUWaitTime, "os_cpu_wait_time", val)
	case "RSRC_MGR_CPU_WAIT_TIME":
		self.set(&self.rec.OSRMWaitTime, "os_rm_wait_time", val)
	case "NUM_CPUS":
		self.set(&self.rec.CPUCount, "cpu_count", val)
	case "PHYSICAL_MEMORY_BYTES":
		// 11g起内存从主机行取，这里只补10g的：字节换算成GiB
		if self.rec.MemoryGB != nil {
			return
		}
		if d, ok := parseDec(val); ok {
			if s, ok2 := ratioStr(d, decGiB, decOne, 2); ok2 {
				self.set(&self.rec.MemoryGB, "memory_gb", s)
			}
		}
	}
}

// handleActivityStats 实例活动统计，按完整统计名匹配，取每秒列（倒数第二个词）
func (self *Parser) handleActivityStats(line string) {
	f := self.fields
	if len(f) < 4 {
		return
	}
	label := strings.Join(f[:len(f)-3], " ")
	perSec := cleanNumber(f[len(f)-2])
	switch label {
	case "physical read total IO requests":
		self.set(&self.rec.ReadIOPS, "read_iops", perSec)
	case "physical write total IO requests":
		self.set(&self.rec.WriteIOPS, "write_iops", perSec)
	case "redo writes":
		self.set(&self.rec.RedoWriteIOPS, "redo_write_iops", perSec)
	case "physical read total bytes":
		if d, ok := parseDec(perSec); ok {
			if s, ok2 := ratioStr(d, decMiB, decOne, 2); ok2 {
				self.set(&self.rec.ReadMBps, "read_mbps", s)
			}
		}
	case "physical write total bytes":
		if d, ok := parseDec(perSec); ok {
			if s, ok2 := ratioStr(d, decMiB, decOne, 2); ok2 {
				self.set(&self.rec.WriteMBps, "write_mbps", s)
			}
		}
	}
}

// handleThreadActivity 日志切换行是全文件最后要取的值，取到就提前结束扫描
func (self *Parser) handleThreadActivity(line string) {
	if !strings.HasPrefix(line, "log switches (derived)") {
		return
	}
	f := self.fields
	if len(f) >= 5 {
		self.set(&self.rec.LogSwitchTotal, "log_switch_total", cleanNumber(f[3]))
		self.set(&self.rec.LogSwitchHour, "log_switch_hour", cleanNumber(f[4]))
	}
	self.done = true
}
