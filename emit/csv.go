package emit

import (
	"encoding/csv"
	"fmt"
	"io"

	"awr-parser/model"
)

// column 一列的标题和取值函数，保证表头和数据行永远对齐
type column struct {
	title string
	value func(*model.ReportRecord) string
}

var columns = buildColumns()

// buildColumns 固定列序：标识、主机、快照窗口、负载、IO、CPU、
// 等待类别、具名等待事件、Top-N、OS统计、特征标志
func buildColumns() []column {
	cols := []column{
		{"Filename", func(r *model.ReportRecord) string { return r.Filename }},
		{"DB Name", func(r *model.ReportRecord) string { return s(r.DBName) }},
		{"Instance Number", func(r *model.ReportRecord) string { return s(r.InstNum) }},
		{"Instance Name", func(r *model.ReportRecord) string { return s(r.InstName) }},
		{"DB Version", func(r *model.ReportRecord) string { return s(r.Version) }},
		{"Cluster", func(r *model.ReportRecord) string { return s(r.Cluster) }},
		{"Format", func(r *model.ReportRecord) string { return r.Format.String() }},
		{"Hostname", func(r *model.ReportRecord) string { return s(r.Hostname) }},
		{"Host OS", func(r *model.ReportRecord) string { return s(r.HostOS) }},
		{"CPUs", func(r *model.ReportRecord) string { return s(r.CPUCount) }},
		{"Memory (GB)", func(r *model.ReportRecord) string { return s(r.MemoryGB) }},
		{"DB Block Size", func(r *model.ReportRecord) string { return s(r.BlockSize) }},
		{"Begin Snap", func(r *model.ReportRecord) string { return s(r.BeginSnap) }},
		{"Begin Time", func(r *model.ReportRecord) string { return s(r.BeginTime) }},
		{"End Snap", func(r *model.ReportRecord) string { return s(r.EndSnap) }},
		{"End Time", func(r *model.ReportRecord) string { return s(r.EndTime) }},
		{"Elapsed Time (mins)", func(r *model.ReportRecord) string { return s(r.ElapsedMin) }},
		{"DB Time (mins)", func(r *model.ReportRecord) string { return s(r.DBTimeMin) }},
		{"Average Active Sessions", func(r *model.ReportRecord) string { return s(r.AvgActSess) }},
		{"Busy Flag", func(r *model.ReportRecord) string { return s(r.Busy) }},
		{"Logical Reads/sec", func(r *model.ReportRecord) string { return s(r.LogicalReads) }},
		{"Block Changes/sec", func(r *model.ReportRecord) string { return s(r.BlockChanges) }},
		{"User Calls/sec", func(r *model.ReportRecord) string { return s(r.UserCalls) }},
		{"Parses/sec", func(r *model.ReportRecord) string { return s(r.Parses) }},
		{"Hard Parses/sec", func(r *model.ReportRecord) string { return s(r.HardParses) }},
		{"Logons/sec", func(r *model.ReportRecord) string { return s(r.Logons) }},
		{"Executes/sec", func(r *model.ReportRecord) string { return s(r.Executes) }},
		{"Transactions/sec", func(r *model.ReportRecord) string { return s(r.Transactions) }},
		{"Buffer Hit Ratio", func(r *model.ReportRecord) string { return s(r.BufferHitRatio) }},
		{"In-Memory Sort Ratio", func(r *model.ReportRecord) string { return s(r.InMemSortRatio) }},
		{"Log Switches (Total)", func(r *model.ReportRecord) string { return s(r.LogSwitchTotal) }},
		{"Log Switches/hour", func(r *model.ReportRecord) string { return s(r.LogSwitchHour) }},
		{"Read IOPS", func(r *model.ReportRecord) string { return s(r.ReadIOPS) }},
		{"Write IOPS", func(r *model.ReportRecord) string { return s(r.WriteIOPS) }},
		{"Redo Write IOPS", func(r *model.ReportRecord) string { return s(r.RedoWriteIOPS) }},
		{"Data Write IOPS", func(r *model.ReportRecord) string { return s(r.DataWriteIOPS) }},
		{"Total IOPS", func(r *model.ReportRecord) string { return s(r.TotalIOPS) }},
		{"Read MB/s", func(r *model.ReportRecord) string { return s(r.ReadMBps) }},
		{"Write MB/s", func(r *model.ReportRecord) string { return s(r.WriteMBps) }},
		{"Redo MB/s", func(r *model.ReportRecord) string { return s(r.RedoMBps) }},
		{"Data Write MB/s", func(r *model.ReportRecord) string { return s(r.DataWriteMBps) }},
		{"Total MB/s", func(r *model.ReportRecord) string { return s(r.TotalMBps) }},
		{"DB CPU Time (s)", func(r *model.ReportRecord) string { return s(r.DBCPUTime) }},
		{"DB CPU %", func(r *model.ReportRecord) string { return s(r.DBCPUPct) }},
	}

	for _, wc := range model.AllWaitClasses {
		wc := wc
		code := wc.Code()
		cols = append(cols,
			column{fmt.Sprintf("Wait Class %s Waits", code), func(r *model.ReportRecord) string { return s(classStat(r, wc).Waits) }},
			column{fmt.Sprintf("Wait Class %s Time (s)", code), func(r *model.ReportRecord) string { return s(classStat(r, wc).Time) }},
			column{fmt.Sprintf("Wait Class %s Avg (ms)", code), func(r *model.ReportRecord) string { return s(classStat(r, wc).AvgMs) }},
			column{fmt.Sprintf("Wait Class %s %% DB Time", code), func(r *model.ReportRecord) string { return s(classStat(r, wc).PctDBTime) }},
		)
	}

	for _, group := range [][]model.WaitEvent{model.ForegroundEvents, model.BackgroundEvents} {
		for _, ev := range group {
			ev := ev
			name := ev.ReportName()
			cols = append(cols,
				column{name + " Waits", func(r *model.ReportRecord) string { return s(eventStat(r, ev).Waits) }},
				column{name + " Time (s)", func(r *model.ReportRecord) string { return s(eventStat(r, ev).Time) }},
				column{name + " Avg (ms)", func(r *model.ReportRecord) string { return s(eventStat(r, ev).AvgMs) }},
				column{name + " % DB Time", func(r *model.ReportRecord) string { return s(eventStat(r, ev).PctDBTime) }},
			)
		}
	}

	for i := 0; i < 5; i++ {
		i := i
		n := i + 1
		cols = append(cols,
			column{fmt.Sprintf("Top Event %d Name", n), func(r *model.ReportRecord) string { return s(topRow(r, i).Name) }},
			column{fmt.Sprintf("Top Event %d Class", n), func(r *model.ReportRecord) string { return s(topRow(r, i).Class) }},
			column{fmt.Sprintf("Top Event %d Waits", n), func(r *model.ReportRecord) string { return s(topRow(r, i).Waits) }},
			column{fmt.Sprintf("Top Event %d Time (s)", n), func(r *model.ReportRecord) string { return s(topRow(r, i).Time) }},
			column{fmt.Sprintf("Top Event %d Avg (ms)", n), func(r *model.ReportRecord) string { return s(topRow(r, i).AvgMs) }},
			column{fmt.Sprintf("Top Event %d %% DB Time", n), func(r *model.ReportRecord) string { return s(topRow(r, i).PctDBTime) }},
		)
	}

	cols = append(cols,
		column{"OS Busy Time", func(r *model.ReportRecord) string { return s(r.OSBusyTime) }},
		column{"OS Idle Time", func(r *model.ReportRecord) string { return s(r.OSIdleTime) }},
		column{"OS IOWait Time", func(r *model.ReportRecord) string { return s(r.OSIOWaitTime) }},
		column{"OS Sys Time", func(r *model.ReportRecord) string { return s(r.OSSysTime) }},
		column{"OS User Time", func(r *model.ReportRecord) string { return s(r.OSUserTime) }},
		column{"OS CPU Wait Time", func(r *model.ReportRecord) string { return s(r.OSCPUWaitTime) }},
		column{"OS RM Wait Time", func(r *model.ReportRecord) string { return s(r.OSRMWaitTime) }},
		column{"Exadata", func(r *model.ReportRecord) string { return yn(r.Exadata) }},
		column{"Data Guard", func(r *model.ReportRecord) string { return yn(r.DataGuard) }},
	)

	return cols
}

// Header 输出一次表头行
func Header(w io.Writer) error {
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.title
	}
	return writeLine(w, titles)
}

// Row 按固定列序输出一条记录，空字段输出空串
func Row(w io.Writer, rec *model.ReportRecord) error {
	vals := make([]string, len(columns))
	for i, c := range columns {
		vals[i] = c.value(rec)
	}
	return writeLine(w, vals)
}

func writeLine(w io.Writer, fields []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func s(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func classStat(r *model.ReportRecord, wc model.WaitClass) model.WaitStats {
	if st := r.WaitClasses[wc]; st != nil {
		return *st
	}
	return model.WaitStats{}
}

func eventStat(r *model.ReportRecord, ev model.WaitEvent) model.WaitStats {
	if st := r.Events[ev]; st != nil {
		return *st
	}
	return model.WaitStats{}
}

func topRow(r *model.ReportRecord, i int) model.TopEvent {
	if t := r.Top[i]; t != nil {
		return *t
	}
	return model.TopEvent{}
}
