// Package logger 基于zerolog的结构化日志
//
// 设计说明：
// 1. 只暴露少量方法（Info/Debug/Warn/Error），业务代码不直接依赖zerolog
// 2. format=console输出人类可读格式（本地开发），format=json输出JSON（便于采集）
// 3. 所有方法对nil接收者安全，测试里可以直接传nil
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志配置
type Options struct {
	Level        string    // debug | info | warn | error，为空时使用info
	Format       string    // console | json
	Output       string    // stdout | stderr | 文件路径；Writer非nil时忽略
	EnableCaller bool      // 是否记录调用位置
	Writer       io.Writer // 测试用，直接指定输出目标
}

// Logger zerolog的轻量封装
type Logger struct {
	base   zerolog.Logger
	closer io.Closer // 输出到文件时持有文件句柄，派生Logger不持有
}

// New 根据Options创建Logger
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	var closer io.Closer
	if writer == nil {
		w, err := openOutput(opts.Output)
		if err != nil {
			return nil, err
		}
		writer = w
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			closer = f
		}
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if strings.EqualFold(opts.Format, "console") {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.EnableCaller {
		ctx = ctx.Caller()
	}
	return &Logger{base: ctx.Logger(), closer: closer}, nil
}

// Nop 返回丢弃所有输出的Logger
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func openOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, nil
	}
}

// Close 关闭日志文件，输出到stdout、stderr或Writer时什么也不做
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// WithFields 返回一个总是携带指定字段的派生Logger
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Info 记录info级别日志
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug 记录debug级别日志
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn 记录warn级别日志
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error 记录error级别日志，err非nil时写入error字段
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
