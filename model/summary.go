package model

import "time"

// ReportSummary 入库的汇总行，一个报告文件一行
type ReportSummary struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"ID"`
	CreateTime string `gorm:"column:create_time" json:"CreateTime"`
	Filename   string `gorm:"column:filename" json:"Filename"`
	DBName     string `gorm:"column:db_name" json:"DBName"`
	InstNum    string `gorm:"column:inst_num" json:"InstNum"`
	InstName   string `gorm:"column:inst_name" json:"InstName"`
	Version    string `gorm:"column:version" json:"Version"`
	Format     string `gorm:"column:format" json:"Format"`
	BeginSnap  string `gorm:"column:begin_snap" json:"BeginSnap"`
	EndSnap    string `gorm:"column:end_snap" json:"EndSnap"`
	BeginTime  string `gorm:"column:begin_time" json:"BeginTime"`
	EndTime    string `gorm:"column:end_time" json:"EndTime"`
	ElapsedMin string `gorm:"column:elapsed_min" json:"ElapsedMin"`
	DBTimeMin  string `gorm:"column:db_time_min" json:"DBTimeMin"`
	AvgActSess string `gorm:"column:avg_act_sess" json:"AvgActSess"`
	Busy       string `gorm:"column:busy" json:"Busy"`
	ReadIOPS   string `gorm:"column:read_iops" json:"ReadIOPS"`
	WriteIOPS  string `gorm:"column:write_iops" json:"WriteIOPS"`
	TotalIOPS  string `gorm:"column:total_iops" json:"TotalIOPS"`
	ReadMBps   string `gorm:"column:read_mbps" json:"ReadMBps"`
	WriteMBps  string `gorm:"column:write_mbps" json:"WriteMBps"`
	TotalMBps  string `gorm:"column:total_mbps" json:"TotalMBps"`
	DBCPUPct   string `gorm:"column:db_cpu_pct" json:"DBCPUPct"`
	Exadata    string `gorm:"column:exadata" json:"Exadata"`
	DataGuard  string `gorm:"column:data_guard" json:"DataGuard"`
}

func (ReportSummary) TableName() string {
	return "awr_report"
}

// NewReportSummary 从解析结果映射出汇总行
func NewReportSummary(rec *ReportRecord) *ReportSummary {
	s := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	yn := func(b bool) string {
		if b {
			return "Y"
		}
		return "N"
	}

	return &ReportSummary{
		CreateTime: time.Now().Format("2006-01-02 15:04:05"),
		Filename:   rec.Filename,
		DBName:     s(rec.DBName),
		InstNum:    s(rec.InstNum),
		InstName:   s(rec.InstName),
		Version:    s(rec.Version),
		Format:     rec.Format.String(),
		BeginSnap:  s(rec.BeginSnap),
		EndSnap:    s(rec.EndSnap),
		BeginTime:  s(rec.BeginTime),
		EndTime:    s(rec.EndTime),
		ElapsedMin: s(rec.ElapsedMin),
		DBTimeMin:  s(rec.DBTimeMin),
		AvgActSess: s(rec.AvgActSess),
		Busy:       s(rec.Busy),
		ReadIOPS:   s(rec.ReadIOPS),
		WriteIOPS:  s(rec.WriteIOPS),
		TotalIOPS:  s(rec.TotalIOPS),
		ReadMBps:   s(rec.ReadMBps),
		WriteMBps:  s(rec.WriteMBps),
		TotalMBps:  s(rec.TotalMBps),
		DBCPUPct:   s(rec.DBCPUPct),
		Exadata:    yn(rec.Exadata),
		DataGuard:  yn(rec.DataGuard),
	}
}
