package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReportSummary(t *testing.T) {
	rec := NewReportRecord("sales11.txt")
	rec.Format = Format11
	db := "SALESDB"
	rec.DBName = &db
	iops := "600"
	rec.TotalIOPS = &iops
	rec.DataGuard = true

	sum := NewReportSummary(rec)

	assert.Equal(t, "sales11.txt", sum.Filename)
	assert.Equal(t, "SALESDB", sum.DBName)
	assert.Equal(t, "11", sum.Format)
	assert.Equal(t, "600", sum.TotalIOPS)
	assert.Equal(t, "", sum.InstName)
	assert.Equal(t, "N", sum.Exadata)
	assert.Equal(t, "Y", sum.DataGuard)
	assert.NotEmpty(t, sum.CreateTime)
}

func TestClassEventSlots(t *testing.T) {
	rec := NewReportRecord("x.txt")
	st := rec.Class(WCCommit)
	assert.Same(t, st, rec.Class(WCCommit))
	ev := rec.Event(EvLogFileSync)
	assert.Same(t, ev, rec.Event(EvLogFileSync))
}

func TestWaitClassTables(t *testing.T) {
	assert.Len(t, AllWaitClasses, 11)
	for _, wc := range AllWaitClasses {
		assert.NotEmpty(t, wc.Code())
		assert.NotEmpty(t, wc.ReportName())
	}
	assert.Equal(t, "usr", WCUserIO.Code())
	assert.Equal(t, "User I/O", WCUserIO.ReportName())
	assert.Equal(t, "db file sequential read", EvDBFileSequentialRead.ReportName())
}
