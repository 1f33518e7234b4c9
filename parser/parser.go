package parser

import (
	"bufio"
	"os"
	"strings"

	"awr-parser/model"

	"github.com/gookit/slog"
)

// state 当前所处的报告段
type state int

const (
	stProfile state = iota
	stInstanceEfficiency
	stTop5
	stCacheSizes
	stTimeModel
	stOSStats
	stFgWaitClass
	stFgWaitEvents
	stBgWaitEvents
	stActivityStats
	stThreadActivity
	stSearching // 段间寻找下一个已知段标题
)

// delimMode 取词方式：按空白取词，或整行保留用于定宽切列
type delimMode int

const (
	modeWord delimMode = iota
	modeLine
)

// 段结束线的横线长度，10g/11g是61，12c起是54
const (
	termWidth1011 = 61
	termWidth12   = 54
)

// Parser 单个文件的扫描状态，每个文件新建一个，扫完即弃
type Parser struct {
	rec       *model.ReportRecord
	state     state
	mode      delimMode
	termWidth int
	lineSkip  int // 跳过接下来N行（已知的表头行数）
	sectSkip  int // 跳过接下来N个整段
	bailout   int // 找表头分隔行的剩余行数
	layout    *layout
	rank      int      // Top-N已取的行数
	fields    []string // 按词取值模式下当前行的分词结果
	trace     bool
	done      bool

	// Profile段的子状态
	dbAwait   bool // 已见"DB Name"表头，等数据行
	hostStage int  // 0未见 1已见"Host Name"表头等分隔行 2等数据行
	hostSep   *layout
}

var handlers = map[state]func(*Parser, string){
	stProfile:            (*Parser).handleProfile,
	stInstanceEfficiency: (*Parser).handleInstanceEfficiency,
	stTop5:               (*Parser).handleTop5,
	stCacheSizes:         (*Parser).handleCacheSizes,
	stTimeModel:          (*Parser).handleTimeModel,
	stOSStats:            (*Parser).handleOSStats,
	stFgWaitClass:        (*Parser).handleWaitClass,
	stFgWaitEvents:       (*Parser).handleFgWaitEvents,
	stBgWaitEvents:       (*Parser).handleBgWaitEvents,
	stActivityStats:      (*Parser).handleActivityStats,
	stThreadActivity:     (*Parser).handleThreadActivity,
	stSearching:          (*Parser).handleSearching,
}

func newParser(filename string) *Parser {
	return &Parser{
		rec:       model.NewReportRecord(filename),
		state:     stProfile,
		mode:      modeWord,
		termWidth: termWidth1011,
	}
}

// Parse 逐行扫描一个已确认为文本AWR报告的文件
// 任何段解析失败都只让该段字段留空，扫描总会走完并返回一条记录
func Parse(path string, trace bool) (*model.ReportRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := newParser(path)
	p.trace = trace
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.feed(sc.Text())
		if p.done {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return p.rec, err
	}
	return p.rec, nil
}

// feed 处理一行：先做行分类，再派发给当前段的处理函数
func (self *Parser) feed(raw string) {
	line := stripControl(raw)
	if strings.TrimSpace(line) == "" {
		return
	}
	if self.isRepeatedHeading(line) {
		// sqlplus没关heading时段中间会重印列头，连带跳过下一行下划线
		self.lineSkip = 1
		return
	}
	if self.lineSkip > 0 {
		self.lineSkip--
		return
	}
	if self.isTerminator(line) {
		// 活动统计段的脚注线也走这里，只归位搜索态不收尾：
		// 三代报告的Thread Activity都排在其后，扫描终点只认日志切换行
		if self.sectSkip > 0 {
			self.sectSkip--
			return
		}
		self.enterSearching()
		return
	}
	if self.sectSkip > 0 {
		return
	}
	if self.mode == modeWord {
		self.fields = strings.Fields(line)
	} else {
		self.fields = nil
	}
	handlers[self.state](self, line)
}

// isTerminator 段结束线：整行只有横线且长度等于当前格式代的线宽
func (self *Parser) isTerminator(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) == self.termWidth && strings.Count(t, "-") == len(t)
}

// isRepeatedHeading 段内重印的列头，只在已经定位过本段布局之后才会出现
func (self *Parser) isRepeatedHeading(line string) bool {
	switch self.state {
	case stActivityStats:
		return strings.HasPrefix(line, "Statistic") && strings.Contains(line, "per Second")
	case stFgWaitEvents, stBgWaitEvents:
		return self.layout != nil && strings.HasPrefix(line, "Event") && strings.Contains(line, "Waits")
	case stFgWaitClass:
		return self.layout != nil && strings.HasPrefix(line, "Wait Class") && strings.Contains(line, "Waits")
	}
	return false
}

func (self *Parser) enterSearching() {
	self.state = stSearching
	self.mode = modeLine
	self.layout = nil
	self.bailout = 0
}

// enterSection 进入按词取值的段
func (self *Parser) enterSection(st state, skip int) {
	self.state = st
	self.mode = modeWord
	self.lineSkip = skip
	slog.Tracef("[%s] 进入段 %d", self.rec.Filename, st)
}

// enterFixed 进入定宽切列的段，先在限定行数内找表头分隔行
func (self *Parser) enterFixed(st state) {
	self.state = st
	self.mode = modeLine
	self.layout = nil
	self.bailout = 10
	self.rank = 0
	slog.Tracef("[%s] 进入段 %d", self.rec.Filename, st)
}

// abandon 在限定行数内没找到表头分隔行，放弃本段并跳过尾部若干行重新对齐
func (self *Parser) abandon(section string) {
	skip := 5
	if self.rec.Format == model.Format12 {
		skip = 10
	}
	slog.Debugf("[%s] 找不到%s段的表头分隔行，放弃该段，跳过%d行", self.rec.Filename, section, skip)
	self.enterSearching()
	self.lineSkip = skip
}

// opener 已知段的起始短语，按序做前缀匹配
type opener struct {
	prefix string
	enter  func(p *Parser)
}

var openers = []opener{
	{"SQL ordered by", func(p *Parser) { p.sectSkip = 1 }},
	{"Operating System Statistics - Detail", func(p *Parser) { p.sectSkip = 1 }},
	{"Operating System Statistics", func(p *Parser) { p.enterSection(stOSStats, 0) }},
	{"Top 5 Timed Foreground Events", func(p *Parser) { p.enterFixed(stTop5) }},
	{"Top 5 Timed Events", func(p *Parser) { p.enterFixed(stTop5) }},
	{"Top 10 Foreground Events by Total Wait Time", func(p *Parser) { p.enterFixed(stTop5) }},
	{"Foreground Wait Class", func(p *Parser) { p.enterFixed(stFgWaitClass) }},
	{"Foreground Wait Events", func(p *Parser) { p.enterFixed(stFgWaitEvents) }},
	{"Background Wait Events", func(p *Parser) { p.enterFixed(stBgWaitEvents) }},
	{"Wait Events Statistics", func(p *Parser) {}}, // 10g的目录页标题，不是数据段
	{"Wait Events", func(p *Parser) {
		// 10g的前台等待事件段标题就叫"Wait Events"
		if p.rec.Format == model.Format10 {
			p.enterFixed(stFgWaitEvents)
		}
	}},
	{"Wait Class", func(p *Parser) {
		if p.rec.Format == model.Format10 {
			p.enterFixed(stFgWaitClass)
		}
	}},
	{"Time Model Statistics", func(p *Parser) {
		// 只在10g取DB CPU，更高版本在前台等待类别段里取
		if p.rec.Format == model.Format10 {
			p.enterSection(stTimeModel, 0)
		} else {
			p.sectSkip = 1
		}
	}},
	{"Cache Sizes", func(p *Parser) {
		// 10g/11g的Cache Sizes在Profile段内处理，这里只有12c会走到
		if p.rec.Format == model.Format12 {
			p.enterSection(stCacheSizes, 0)
		} else {
			p.sectSkip = 1
		}
	}},
	{"Instance Activity Stats - Absolute Values", func(p *Parser) { p.sectSkip = 1 }},
	{"Instance Activity Stats - Thread Activity", func(p *Parser) { p.enterSection(stThreadActivity, 0) }},
	{"Instance Activity Stats", func(p *Parser) { p.enterSection(stActivityStats, 0) }},
}

func (self *Parser) handleSearching(line string) {
	for _, o := range openers {
		if strings.HasPrefix(line, o.prefix) {
			o.enter(self)
			return
		}
	}
	// 不认识的行直接略过
}

// set 记录一个字段，-p模式下同步打印到stderr
func (self *Parser) set(dst **string, name, val string) {
	if val == "" {
		return
	}
	v := val
	*dst = &v
	if self.trace {
		slog.Infof("[%s] %s = %s", self.rec.Filename, name, v)
	}
}

// stripControl 去掉回车等控制字符，保留制表符
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' {
			return -1
		}
		return r
	}, s)
}
