package main

import (
	"flag"
	"fmt"
	"os"

	"awr-parser/config"
	"awr-parser/emit"
	"awr-parser/http"
	"awr-parser/parser"
	"awr-parser/store"

	"github.com/gookit/slog"
)

/*
####################################################################################################
#  Name        :  AWRParser
#  Author      :  Elison
#  Date        :  2026-03-02
#  Description :  批量解析Oracle AWR文本报告，输出csv
#  Updates     :
#      Version     When            What
#      --------    -----------     -----------------------------------------------------------------
#      v1.0        2026-03-02      重构bash版本
#      v1.1        2026-05-20      增加服务模式和入库模式
####################################################################################################
*/

var (
	flagHeader  = flag.Bool("H", false, "只输出表头行后退出")
	flagNoHead  = flag.Bool("n", false, "不输出表头行")
	flagPrint   = flag.Bool("p", false, "解析时逐字段打印到stderr")
	flagSilent  = flag.Bool("s", false, "静默模式，只输出csv")
	flagVerbose = flag.Bool("v", false, "输出调试日志")
	flagDebug   = flag.Bool("d", false, "")
	flagServe   = flag.Bool("S", false, "启动http上传解析服务")
	flagLoad    = flag.Bool("L", false, "解析结果汇总行写入结果库")
	flagConfig  = flag.String("c", "config.ini", "配置文件，服务模式和入库模式使用")
)

func init() {
	// 创建文本格式化器
	formatter := slog.NewTextFormatter()
	formatter.SetTemplate("[{{datetime}}] [{{level}}] [{{caller}}] {{message}}\n")
	formatter.TimeFormat = "2006-01-02T15:04:05.000"
	formatter.EnableColor = false // 禁用颜色输出

	// 应用全局格式
	slog.SetFormatter(formatter)
}

func usage() {
	fmt.Fprintf(os.Stderr, `用法: %s [参数] 报告文件...

参数:
  -H          只输出表头行后退出
  -n          不输出表头行
  -p          解析时逐字段打印到stderr
  -s          静默模式，不输出日志
  -v          输出调试日志
  -S          启动http上传解析服务
  -L          解析结果汇总行写入结果库
  -c 文件     配置文件(默认config.ini)，服务模式和入库模式使用
`, os.Args[0])
}

// setupLogging 日志全部走stderr，csv独占stdout
func setupLogging() {
	slog.Configure(func(l *slog.SugaredLogger) {
		l.Output = os.Stderr
		switch {
		case *flagDebug:
			l.Level = slog.TraceLevel
		case *flagVerbose:
			l.Level = slog.DebugLevel
		case *flagSilent:
			l.Level = slog.ErrorLevel
		default:
			l.Level = slog.InfoLevel
		}
	})
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// 静默和打印/调试互斥
	if *flagSilent && (*flagVerbose || *flagPrint) {
		usage()
		os.Exit(2)
	}
	if *flagHeader && *flagServe {
		usage()
		os.Exit(2)
	}

	setupLogging()

	if *flagHeader {
		emit.Header(os.Stdout)
		os.Exit(0)
	}

	var st *store.Store
	if *flagServe || *flagLoad {
		if err := config.Load(*flagConfig); err != nil {
			slog.Errorf("%v", err)
			os.Exit(2)
		}
		if config.Global.DB.Configured() {
			var err error
			st, err = store.New(&config.Global.DB)
			if err != nil {
				slog.Errorf("连接结果库报错: %v", err)
				os.Exit(2)
			}
		} else if *flagLoad {
			slog.Errorf("入库模式需要在配置文件里配置结果库")
			os.Exit(2)
		}
	}

	if *flagServe {
		slog.Infof("启动服务，端口%d", config.Global.HttpPort)
		http.StartService(st, config.Global.HttpPort, config.Global.ArchiveDir)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(2)
	}

	var processed, skipped, errors int
	headerDone := *flagNoHead

	for _, file := range files {
		kind, err := parser.Classify(file)
		if err != nil {
			slog.Errorf("[%s] 读取失败: %v", file, err)
			skipped++
			errors++
			continue
		}
		if kind != parser.KindTextReport {
			slog.Errorf("[%s] 不是AWR文本报告(%s)，跳过", file, kind)
			skipped++
			errors++
			continue
		}

		rec, err := parser.Parse(file, *flagPrint)
		if err != nil {
			slog.Errorf("[%s] 解析失败: %v", file, err)
			skipped++
			errors++
			continue
		}
		errors += parser.Finalize(rec)

		if !headerDone {
			emit.Header(os.Stdout)
			headerDone = true
		}
		emit.Row(os.Stdout, rec)
		processed++

		if *flagLoad {
			if err := st.Save(rec); err != nil {
				slog.Errorf("[%s] 写入结果库失败: %v", file, err)
				errors++
			}
		}
	}

	slog.Infof("完成: 处理%d个，跳过%d个，%d处错误", processed, skipped, errors)

	switch {
	case processed == 0:
		os.Exit(2)
	case errors > 0:
		os.Exit(1)
	}
}
