package model

// WaitClass 等待类别，报告里固定的11个粗粒度分类
type WaitClass int

const (
	WCAdministrative WaitClass = iota
	WCApplication
	WCCluster
	WCCommit
	WCConcurrency
	WCConfiguration
	WCNetwork
	WCOther
	WCScheduler
	WCUserIO
	WCSystemIO
)

// AllWaitClasses 按输出列顺序排列
var AllWaitClasses = []WaitClass{
	WCAdministrative, WCApplication, WCCluster, WCCommit, WCConcurrency,
	WCConfiguration, WCNetwork, WCOther, WCScheduler, WCUserIO, WCSystemIO,
}

var waitClassCodes = map[WaitClass]string{
	WCAdministrative: "adm",
	WCApplication:    "app",
	WCCluster:        "clu",
	WCCommit:         "cmt",
	WCConcurrency:    "cnc",
	WCConfiguration:  "cfg",
	WCNetwork:        "net",
	WCOther:          "oth",
	WCScheduler:      "sch",
	WCUserIO:         "usr",
	WCSystemIO:       "sys",
}

var waitClassNames = map[WaitClass]string{
	WCAdministrative: "Administrative",
	WCApplication:    "Application",
	WCCluster:        "Cluster",
	WCCommit:         "Commit",
	WCConcurrency:    "Concurrency",
	WCConfiguration:  "Configuration",
	WCNetwork:        "Network",
	WCOther:          "Other",
	WCScheduler:      "Scheduler",
	WCUserIO:         "User I/O",
	WCSystemIO:       "System I/O",
}

func (w WaitClass) Code() string { return waitClassCodes[w] }

// ReportName 报告里的类别名，按前缀匹配
func (w WaitClass) ReportName() string { return waitClassNames[w] }

// WaitEvent 需要单独输出的具名等待事件
type WaitEvent int

const (
	EvDBFileSequentialRead WaitEvent = iota
	EvDBFileScatteredRead
	EvDirectPathRead
	EvDirectPathReadTemp
	EvDirectPathWrite
	EvDirectPathWriteTemp
	EvLogFileSync
	EvDBFileParallelWrite
	EvLogFileParallelWrite
	EvLogFileSequentialRead
)

// ForegroundEvents 前台事件白名单，按输出列顺序
var ForegroundEvents = []WaitEvent{
	EvDBFileSequentialRead, EvDBFileScatteredRead,
	EvDirectPathRead, EvDirectPathReadTemp,
	EvDirectPathWrite, EvDirectPathWriteTemp,
	EvLogFileSync,
}

// BackgroundEvents 后台事件白名单，按输出列顺序
var BackgroundEvents = []WaitEvent{
	EvDBFileParallelWrite, EvLogFileParallelWrite, EvLogFileSequentialRead,
}

var waitEventNames = map[WaitEvent]string{
	EvDBFileSequentialRead:  "db file sequential read",
	EvDBFileScatteredRead:   "db file scattered read",
	EvDirectPathRead:        "direct path read",
	EvDirectPathReadTemp:    "direct path read temp",
	EvDirectPathWrite:       "direct path write",
	EvDirectPathWriteTemp:   "direct path write temp",
	EvLogFileSync:           "log file sync",
	EvDBFileParallelWrite:   "db file parallel write",
	EvLogFileParallelWrite:  "log file parallel write",
	EvLogFileSequentialRead: "log file sequential read",
}

func (e WaitEvent) ReportName() string { return waitEventNames[e] }

// WaitStats 一个等待类别或等待事件的四元组
// 报告没给的值保持nil，输出时为空串
type WaitStats struct {
	Waits     *string
	Time      *string
	AvgMs     *string
	PctDBTime *string
}

// TopEvent Top-N耗时事件的一行，最多取前5行，保持报告顺序
type TopEvent struct {
	Name      *string
	Class     *string
	Waits     *string
	Time      *string
	AvgMs     *string
	PctDBTime *string
}

// ReportRecord 一个报告文件解析出的全部字段
// 除Filename外都可为空；数值保留报告原文（去掉千分位逗号），派生值统一经舍入规则计算
type ReportRecord struct {
	Filename string
	DBName   *string
	InstNum  *string
	InstName *string
	Version  *string
	Cluster  *string
	Format   Format

	Hostname  *string
	HostOS    *string
	CPUCount  *string
	MemoryGB  *string
	BlockSize *string

	BeginSnap  *string
	BeginTime  *string
	EndSnap    *string
	EndTime    *string
	ElapsedMin *string
	DBTimeMin  *string
	AvgActSess *string
	Busy       *string

	LogicalReads   *string // 以下都是每秒值
	BlockChanges   *string
	UserCalls      *string
	Parses         *string
	HardParses     *string
	Logons         *string
	Executes       *string
	Transactions   *string
	BufferHitRatio *string
	InMemSortRatio *string
	LogSwitchTotal *string
	LogSwitchHour  *string

	ReadIOPS      *string
	WriteIOPS     *string // 总写
	RedoWriteIOPS *string
	DataWriteIOPS *string // 派生: 总写 - redo写
	TotalIOPS     *string // 派生: 读 + 总写
	ReadMBps      *string
	WriteMBps     *string
	RedoMBps      *string
	DataWriteMBps *string
	TotalMBps     *string

	DBCPUTime *string // 秒
	DBCPUPct  *string // 占DB Time百分比

	WaitClasses map[WaitClass]*WaitStats
	Events      map[WaitEvent]*WaitStats
	Top         [5]*TopEvent

	// OS统计原始计数，单位百分之一秒，不做换算
	OSBusyTime    *string
	OSIdleTime    *string
	OSIOWaitTime  *string
	OSSysTime     *string
	OSUserTime    *string
	OSCPUWaitTime *string
	OSRMWaitTime  *string

	Exadata   bool
	DataGuard bool
}

func NewReportRecord(filename string) *ReportRecord {
	return &ReportRecord{
		Filename:    filename,
		WaitClasses: make(map[WaitClass]*WaitStats),
		Events:      make(map[WaitEvent]*WaitStats),
	}
}

// Class 取等待类别的槽位，没有则创建
func (self *ReportRecord) Class(w WaitClass) *WaitStats {
	st, ok := self.WaitClasses[w]
	if !ok {
		st = &WaitStats{}
		self.WaitClasses[w] = st
	}
	return st
}

// Event 取具名等待事件的槽位，没有则创建
func (self *ReportRecord) Event(e WaitEvent) *WaitStats {
	st, ok := self.Events[e]
	if !ok {
		st = &WaitStats{}
		self.Events[e] = st
	}
	return st
}
