package parser

import (
	"awr-parser/model"

	"github.com/gookit/slog"
)

// Finalize 全量扫描后的派生计算和一致性检查，返回记为处理错误的问题数
// 每一步的输入缺了就跳过该步、对应字段留空，从不凭空造数
func Finalize(rec *model.ReportRecord) int {
	if rec.Format == model.FormatUnknown {
		slog.Errorf("[%s] 无法识别报告格式代，跳过后处理", rec.Filename)
		return 1
	}

	calcBusy(rec)
	calcIOTotals(rec)
	if rec.Format == model.Format10 {
		calcClassPct10(rec)
	}
	return checkConsistency(rec)
}

// calcBusy 平均活动会话数超过CPU数就算忙
func calcBusy(rec *model.ReportRecord) {
	aas, ok1 := parseDecPtr(rec.AvgActSess)
	cpu, ok2 := parseDecPtr(rec.CPUCount)
	if !ok1 || !ok2 {
		slog.Infof("[%s] 缺少平均活动会话数或CPU数，忙标志留空", rec.Filename)
		return
	}
	busy := "N"
	if aas.GreaterThan(cpu) {
		busy = "Y"
	}
	rec.Busy = &busy
}

// calcIOTotals 读写合计与数据写，两个操作数都在才算
func calcIOTotals(rec *model.ReportRecord) {
	if r, ok := parseDecPtr(rec.ReadIOPS); ok {
		if w, ok2 := parseDecPtr(rec.WriteIOPS); ok2 {
			if sum := r.Add(w); !sum.IsZero() {
				s := sum.String()
				rec.TotalIOPS = &s
			}
		}
	}
	if w, ok := parseDecPtr(rec.WriteIOPS); ok {
		if rw, ok2 := parseDecPtr(rec.RedoWriteIOPS); ok2 {
			s := w.Sub(rw).String()
			rec.DataWriteIOPS = &s
		}
	}
	if r, ok := parseDecPtr(rec.ReadMBps); ok {
		if w, ok2 := parseDecPtr(rec.WriteMBps); ok2 {
			if sum := r.Add(w); !sum.IsZero() {
				s := sum.String()
				rec.TotalMBps = &s
			}
		}
	}
	if w, ok := parseDecPtr(rec.WriteMBps); ok {
		if rm, ok2 := parseDecPtr(rec.RedoMBps); ok2 {
			s := w.Sub(rm).String()
			rec.DataWriteMBps = &s
		}
	}
}

// calcClassPct10 10g的等待类别段没有%DB time列，事后按 时间/(DB Time*60)*100 换算
// 各类别百分比合计可能超过100%，这是10g报告本身的限制，保留原样
func calcClassPct10(rec *model.ReportRecord) {
	dbt, ok := parseDecPtr(rec.DBTimeMin)
	if !ok || dbt.IsZero() {
		slog.Infof("[%s] DB Time缺失或为0，无法换算10g等待类别百分比", rec.Filename)
		return
	}
	den := dbt.Mul(decSixty)
	for _, wc := range model.AllWaitClasses {
		st := rec.WaitClasses[wc]
		if st == nil || st.Time == nil || st.PctDBTime != nil {
			continue
		}
		t, ok := parseDec(*st.Time)
		if !ok {
			slog.Infof("[%s] 等待类别%s的时间不是数字，百分比留空", rec.Filename, wc.Code())
			continue
		}
		if s, ok2 := ratioStr(t, den, decHundred, 1); ok2 {
			st.PctDBTime = &s
		}
	}
}

// checkConsistency 扫完还缺关键字段说明报告没解析动，计为处理错误但照常输出
func checkConsistency(rec *model.ReportRecord) int {
	errs := 0
	if rec.DBName == nil {
		slog.Errorf("[%s] 没取到库名，报告可能无法解析", rec.Filename)
		errs++
	}
	if rec.ReadIOPS == nil || rec.WriteIOPS == nil {
		slog.Errorf("[%s] 没取到读/写IOPS", rec.Filename)
		errs++
	}
	if rec.ReadMBps == nil || rec.WriteMBps == nil {
		slog.Errorf("[%s] 没取到读/写吞吐量", rec.Filename)
		errs++
	}
	if rec.CPUCount == nil || rec.MemoryGB == nil {
		slog.Infof("[%s] 缺少CPU数或内存大小", rec.Filename)
	}
	if rec.Format >= model.Format11 && rec.Hostname == nil {
		slog.Infof("[%s] 缺少主机信息", rec.Filename)
	}
	return errs
}
