package config

import "image/color"

// 布局配置常量
// 本文件定义了窗口尺寸、颜色以及世界坐标与屏幕坐标之间的转换

// Window Configuration (窗口配置)
// 世界坐标原点在窗口左下角、y 轴向上；屏幕坐标原点在左上角、y 轴向下
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题前缀
	GameWindowTitle = "BONGallistix"

	// ProjectileHalfSize 投射物绘制为正方形，中心两侧各扩展的像素数
	ProjectileHalfSize = 2.0

	// WallStrokeWidth 墙壁线宽
	WallStrokeWidth = 1.0

	// LauncherStrokeWidth 发射器线宽
	LauncherStrokeWidth = 1.5
)

// 颜色配置（RGBA，与原版一致）
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorWall       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorLauncher   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorProjectile = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorTarget     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ColorHUD        = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// WorldToScreenY 将世界坐标 y（向上）转换为屏幕坐标 y（向下）
func WorldToScreenY(worldY float64) float64 {
	return GameWindowHeight - worldY - 1
}

// ScreenToWorldY 将屏幕坐标 y 转换为世界坐标 y
// 与 WorldToScreenY 互为逆运算
func ScreenToWorldY(screenY float64) float64 {
	return GameWindowHeight - screenY - 1
}
