// Package theme 日间/夜间主题
//
// 主题只决定两个颜色变量:--color-dark与--color-light。
// 夜间模式把两者对调,其余样式都基于这两个变量计算。
package theme

import (
	"fmt"
)

// Name 主题名称
type Name string

const (
	Day   Name = "day"
	Night Name = "night"
)

// CSS变量名
const (
	VarColorDark  = "--color-dark"
	VarColorLight = "--color-light"
)

// RGB 颜色分量
type RGB struct {
	R, G, B uint8
}

// String 返回CSS变量使用的"r, g, b"格式
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Hex 返回#rrggbb格式(终端界面使用)
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	ink   = RGB{R: 10, G: 10, B: 20}
	paper = RGB{R: 255, G: 255, B: 255}
)

// Palette 主题调色板
type Palette struct {
	Dark  RGB
	Light RGB
}

// Parse 解析主题名称
// 只有"night"是夜间模式,其他值一律视为日间模式
func Parse(s string) Name {
	if Name(s) == Night {
		return Night
	}
	return Day
}

// Palette 返回主题对应的调色板
func (n Name) Palette() Palette {
	if n == Night {
		return Palette{Dark: paper, Light: ink}
	}
	return Palette{Dark: ink, Light: paper}
}

// CSSVariables 返回需要写入根元素的CSS变量
func (p Palette) CSSVariables() map[string]string {
	return map[string]string{
		VarColorDark:  p.Dark.String(),
		VarColorLight: p.Light.String(),
	}
}
