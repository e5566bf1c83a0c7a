package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookcatalog",
		Short:         "Browse, search and serve a book catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 不带子命令时进入终端界面
			return runBrowse(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default config/config.yaml)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newOptionsCmd(flags))
	cmd.AddCommand(newSeedCmd(flags))

	return cmd
}

// loadConfig 加载配置并创建日志器
// 调用方负责在命令结束时closeLogger
func loadConfig(flags *rootFlags) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := provideLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// closeLogger 命令结束时关闭日志文件
func closeLogger(log *logger.Logger) {
	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "关闭日志文件失败: %v\n", err)
	}
}
