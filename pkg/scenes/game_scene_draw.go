package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/geometry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw 绘制关卡、发射器、投射物与 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)

	level := s.session.Level()
	if level == nil {
		return
	}

	if !s.blink.Hides(components.BlinkWalls) {
		for _, wall := range level.Walls.All() {
			strokeSegment(screen, wall, config.WallStrokeWidth, config.ColorWall)
		}
	}

	if !s.blink.Hides(components.BlinkTarget) {
		s.drawTarget(screen, level.Target)
	}

	launcher := s.session.Launcher()
	strokeSegment(screen, launcher.Segment(), config.LauncherStrokeWidth, config.ColorLauncher)

	s.drawProjectile(screen, s.session.Projectile().Current.Position)

	if s.showHUD() {
		s.drawHUD(screen)
	}
}

// drawTarget 目标绘制为描边矩形
func (s *GameScene) drawTarget(screen *ebiten.Image, target components.TargetComponent) {
	// 世界坐标 y 向上，矩形在屏幕上的左上角对应 Max.Y
	x := float32(target.Min.X)
	y := float32(config.WorldToScreenY(target.Max.Y))
	vector.StrokeRect(screen, x, y, float32(target.Width()), float32(target.Height()),
		config.WallStrokeWidth, config.ColorTarget, false)
}

// drawProjectile 投射物绘制为以位置为中心的小正方形
func (s *GameScene) drawProjectile(screen *ebiten.Image, pos geometry.Point) {
	half := float32(config.ProjectileHalfSize)
	x := float32(pos.X) - half
	y := float32(config.WorldToScreenY(pos.Y)) - half
	vector.DrawFilledRect(screen, x, y, 2*half+1, 2*half+1, config.ColorProjectile, false)
}

// drawHUD 左上角显示关卡、飞行时间和发射次数
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	for i, line := range s.hudLines() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(HUDMarginX, float64(HUDMarginY+i*HUDLineSpacing))
		op.ColorScale.ScaleWithColor(config.ColorHUD)
		text.Draw(screen, line, s.hudFace, op)
	}
}

// hudLines HUD 文本，有存档时附带最高通过关卡
func (s *GameScene) hudLines() []string {
	lines := []string{
		fmt.Sprintf("Niveau %d", s.session.LevelIndex()),
		fmt.Sprintf("temps: %5.2f", s.session.Time()),
		fmt.Sprintf("essais: %d", s.session.Attempts()),
	}
	if s.gameState != nil && s.gameState.Saves != nil {
		if highest := s.gameState.Saves.GetData().HighestLevel; highest > 0 {
			lines = append(lines, fmt.Sprintf("record: niveau %d", highest))
		}
	}
	if level := s.session.Level(); level != nil && level.Config.Description != "" {
		lines = append(lines, level.Config.Description)
	}
	return lines
}

func (s *GameScene) showHUD() bool {
	settings := s.settings()
	return settings == nil || settings.GetSettings().ShowHUD
}

// strokeSegment 把世界坐标线段画到屏幕上
func strokeSegment(screen *ebiten.Image, seg geometry.Segment, width float32, clr color.Color) {
	vector.StrokeLine(screen,
		float32(seg.A.X), float32(config.WorldToScreenY(seg.A.Y)),
		float32(seg.B.X), float32(config.WorldToScreenY(seg.B.Y)),
		width, clr, false)
}
