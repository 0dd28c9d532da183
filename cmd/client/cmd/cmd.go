package cmd

import (
	"context"
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"xfrpc/client"
	"xfrpc/pkg/config"
)

const (
	exitUsage     = 1
	exitParse     = 2
	exitInvariant = 3
)

const defaultConfigFile = "xfrpc.ini"

var cmdReady bool

var rootCmd = &cobra.Command{
	Use:   "xfrpc",
	Short: "frp compatible reverse proxy client",
	Run: func(cmd *cobra.Command, args []string) {
		cmdReady = true
	},
	Example: "xfrpc -c xfrpc.ini\nxfrpc -c xfrpc.ini --dump",
}

func init() {
	rootCmd.Flags().StringP("config", "c", defaultConfigFile, "config file")
	rootCmd.Flags().StringP("log-level", "l", "", "log level, overrides [common] log_level")
	rootCmd.Flags().Bool("dump", false, "print the loaded config as yaml and exit")

	_ = viper.BindPFlag("config", rootCmd.Flags().Lookup("config"))
	_ = viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("dump", rootCmd.Flags().Lookup("dump"))
	viper.SetEnvPrefix("xfrpc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func initLog() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			fileName := path.Base(frame.File)
			return frame.Function, fileName
		},
	})
	// 命令行指定的级别在加载配置前生效
	if level := viper.GetString("log_level"); level != "" {
		if l, err := logrus.ParseLevel(level); err == nil {
			logrus.SetLevel(l)
		}
	}
}

func exitCode(err error) int {
	var parseErr *config.FileParseError
	var invariantErr *config.InvariantViolation
	switch {
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &invariantErr):
		return exitInvariant
	}
	return exitUsage
}

func run(ctx context.Context) error {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return err
	}
	if viper.GetBool("dump") {
		out, err := dump(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}
	if err := applyLog(cfg.Common(), viper.GetString("log_level")); err != nil {
		return err
	}
	c := client.NewControl(cfg)
	if err := c.Prepare(); err != nil {
		return err
	}
	logrus.Debugf("login %s", c.LoginBody())
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	logrus.Infof("config ready, %d proxies", len(c.Proxies()))
	return nil
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		logrus.Exit(exitUsage)
	}
	if cmdReady {
		initLog()
		if err := run(ctx); err != nil {
			logrus.Error(err)
			if errors.Is(err, context.Canceled) {
				return
			}
			logrus.Exit(exitCode(err))
		}
	}
}
