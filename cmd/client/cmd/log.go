package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"xfrpc/pkg/config"
)

// applyLog 按 [common] 的 log_level、log_way、log_file 设置 logrus，命令行级别优先
func applyLog(common *config.CommonConfig, override string) error {
	level := common.LogLevel
	if override != "" {
		level = override
	}
	l, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log_level %q, using info", level)
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
	if l >= logrus.DebugLevel {
		logrus.SetReportCaller(true)
	}

	switch common.LogWay {
	case "file":
		if common.LogFile == "" || common.LogFile == "console" {
			return nil
		}
		f, err := openLogFile(common.LogFile)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", common.LogFile, err)
		}
		logrus.SetOutput(f)
	case "console", "":
	default:
		logrus.Warnf("unknown log_way %q, using console", common.LogWay)
	}
	return nil
}

// openLogFile 以追加方式打开 log_file
func openLogFile(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
