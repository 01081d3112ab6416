package viewstate

import (
	"math"

	"github.com/shenikar/alert_dashboard/internal/formatter"
)

// PlayerConfig описывает оформление видеоплеера
type PlayerConfig struct {
	VideoURL  string `json:"video_url"`
	PosterURL string `json:"poster_url,omitempty"`
	MaxWidth  string `json:"max_width"`
	Radius    string `json:"radius"`
}

// DefaultPlayerConfig - плеер в карточке инцидента
func DefaultPlayerConfig(videoURL string) PlayerConfig {
	return PlayerConfig{
		VideoURL: videoURL,
		MaxWidth: "640px",
		Radius:   "8px",
	}
}

// PlaybackState - снимок состояния воспроизведения
type PlaybackState struct {
	Playing  bool         `json:"playing"`
	Position float64      `json:"position"`
	Duration float64      `json:"duration"`
	Label    string       `json:"label"`
	Config   PlayerConfig `json:"config"`
}

// Playback - состояние элементов управления видео. Подписчики на позицию
// воспроизведения освобождаются функцией release или Close.
type Playback struct {
	config    PlayerConfig
	playing   bool
	position  float64
	duration  float64
	listeners map[int]func(position float64)
	nextID    int
}

func NewPlayback(config PlayerConfig) *Playback {
	return &Playback{
		config:    config,
		listeners: make(map[int]func(float64)),
	}
}

func (p *Playback) State() PlaybackState {
	return PlaybackState{
		Playing:  p.playing,
		Position: p.position,
		Duration: p.duration,
		Label:    formatter.PlaybackTime(p.position) + " / " + formatter.PlaybackTime(p.duration),
		Config:   p.config,
	}
}

// TogglePlay переключает воспроизведение и возвращает новое значение
func (p *Playback) TogglePlay() bool {
	p.playing = !p.playing
	return p.playing
}

// LoadMetadata задает длительность видео
func (p *Playback) LoadMetadata(duration float64) {
	if !isFinite(duration) || duration < 0 {
		duration = 0
	}
	p.duration = duration
	p.position = p.clamp(p.position)
}

// Seek перематывает на позицию, ограниченную длительностью
func (p *Playback) Seek(position float64) float64 {
	p.setPosition(position)
	return p.position
}

// TimeUpdate фиксирует текущую позицию от видеоэлемента
func (p *Playback) TimeUpdate(position float64) {
	p.setPosition(position)
}

// Watch подписывает fn на изменения позиции. Возвращаемая функция снимает
// подписку; повторный вызов безопасен.
func (p *Playback) Watch(fn func(position float64)) (release func()) {
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		delete(p.listeners, id)
	}
}

func (p *Playback) Listeners() int {
	return len(p.listeners)
}

// Close останавливает воспроизведение и снимает все подписки
func (p *Playback) Close() {
	p.playing = false
	clear(p.listeners)
}

func (p *Playback) setPosition(position float64) {
	p.position = p.clamp(position)
	for _, fn := range p.listeners {
		fn(p.position)
	}
}

func (p *Playback) clamp(position float64) float64 {
	if !isFinite(position) || position < 0 {
		return 0
	}
	if p.duration > 0 && position > p.duration {
		return p.duration
	}
	return position
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
