package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xiebiao/bookcatalog/internal/interface/tui"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return err
	}
	defer closeLogger(log)
	// 日志写终端会打乱界面，只保留写文件的配置
	if isTerminalOutput(cfg.Log.Output) {
		log = logger.Nop()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, cleanup, err := initializeService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	p := tea.NewProgram(
		tui.NewModel(ctx, svc),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}

func isTerminalOutput(output string) bool {
	switch output {
	case "", "stdout", "stderr":
		return true
	default:
		return false
	}
}
