package model

// Format AWR报告格式代，根据列的措辞和布局推断
type Format int

const (
	FormatUnknown Format = 0
	Format10      Format = 10 // 10g
	Format11      Format = 11 // 11g以及格式相同的更高版本
	Format12      Format = 12 // 12c起的新版布局
)

func (f Format) String() string {
	switch f {
	case Format10:
		return "10"
	case Format11:
		return "11"
	case Format12:
		return "12"
	}
	return ""
}
