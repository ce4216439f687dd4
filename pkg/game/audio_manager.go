package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 44100

// SoundID 音效标识
type SoundID string

const (
	// SoundFire 发射
	SoundFire SoundID = "fire"
	// SoundBounce 撞墙
	SoundBounce SoundID = "bounce"
	// SoundHit 命中目标
	SoundHit SoundID = "hit"
	// SoundMiss 未命中
	SoundMiss SoundID = "miss"
)

// tone 一段正弦音
type tone struct {
	freq     float64 // 频率（Hz）
	duration float64 // 时长（秒）
}

// soundTable 每个音效由若干段正弦音依次组成
var soundTable = map[SoundID][]tone{
	SoundFire:   {{freq: 330, duration: 0.05}, {freq: 440, duration: 0.05}},
	SoundBounce: {{freq: 880, duration: 0.03}},
	SoundHit:    {{freq: 523, duration: 0.08}, {freq: 659, duration: 0.08}, {freq: 784, duration: 0.16}},
	SoundMiss:   {{freq: 220, duration: 0.12}, {freq: 165, duration: 0.2}},
}

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存音效播放器
//   - 从 SettingsManager 读取音量与开关
//
// audio.Context 为 nil 时所有播放调用都静默返回 false（测试与无声卡环境）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[SoundID]*audio.Player
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
	}
}

// PlaySound 播放音效，返回是否成功播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(id)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量并应用到已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.GetSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// PreloadSounds 预先合成全部音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds() {
	for id := range soundTable {
		am.getSoundPlayer(id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(id SoundID) *audio.Player {
	if am.context == nil {
		return nil
	}
	if player, ok := am.soundPlayers[id]; ok {
		return player
	}

	tones, ok := soundTable[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return nil
	}

	player := am.context.NewPlayerFromBytes(synthesize(tones, SampleRate))
	am.soundPlayers[id] = player
	return player
}

// synthesize 生成 16 位小端立体声 PCM
// 每段音的首尾做短暂淡入淡出，避免爆音
func synthesize(tones []tone, sampleRate int) []byte {
	total := 0
	for _, t := range tones {
		total += int(t.duration * float64(sampleRate))
	}

	const (
		amplitude = 0.3
		fade      = 0.005 // 秒
	)
	fadeSamples := int(fade * float64(sampleRate))

	pcm := make([]byte, 0, total*4)
	for _, t := range tones {
		n := int(t.duration * float64(sampleRate))
		for i := 0; i < n; i++ {
			env := 1.0
			if i < fadeSamples {
				env = float64(i) / float64(fadeSamples)
			} else if n-i < fadeSamples {
				env = float64(n-i) / float64(fadeSamples)
			}
			v := amplitude * env * math.Sin(2*math.Pi*t.freq*float64(i)/float64(sampleRate))
			s := int16(v * math.MaxInt16)
			lo, hi := byte(s), byte(uint16(s)>>8)
			pcm = append(pcm, lo, hi, lo, hi)
		}
	}
	return pcm
}
