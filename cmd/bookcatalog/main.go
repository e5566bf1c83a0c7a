package main

import (
	"fmt"
	"os"
)

// main 图书目录程序入口
// 子命令：serve（HTTP API）、browse（终端界面）、search/show/options（一次性查询）、seed（导入MySQL）
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
