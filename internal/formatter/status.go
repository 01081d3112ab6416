package formatter

import "github.com/shenikar/alert_dashboard/internal/models"

// Status colors
const (
	ColorActive    = "#FF9800" // Orange
	ColorConfirmed = "#4CAF50" // Green
	ColorFalse     = "#F44336" // Red
	ColorPending   = "#2196F3" // Blue
	ColorUnknown   = "#9E9E9E" // Gray
)

// Palette сопоставляет статусу цвет бейджа
type Palette struct {
	colors   map[models.Status]string
	fallback string
}

// NewPalette создает палитру; fallback используется для статусов без цвета
func NewPalette(colors map[models.Status]string, fallback string) Palette {
	c := make(map[models.Status]string, len(colors))
	for k, v := range colors {
		c[k] = v
	}
	return Palette{colors: c, fallback: fallback}
}

// Color возвращает цвет статуса
func (p Palette) Color(status models.Status) string {
	if c, ok := p.colors[status]; ok {
		return c
	}
	return p.fallback
}

var (
	// IncidentPalette - палитра ленты инцидентов
	IncidentPalette = NewPalette(map[models.Status]string{
		models.StatusActive:    ColorActive,
		models.StatusConfirmed: ColorConfirmed,
		models.StatusFalse:     ColorFalse,
		models.StatusPending:   ColorPending,
	}, ColorUnknown)

	// EntityPalette - палитра списка сущностей
	EntityPalette = NewPalette(map[models.Status]string{
		models.StatusActive:  ColorConfirmed,
		models.StatusUnknown: ColorUnknown,
	}, ColorPending)
)

// BadgeStyle описывает бейдж статуса для конкретного представления
type BadgeStyle struct {
	Palette Palette
	Radius  string
}

var (
	IncidentBadge = BadgeStyle{Palette: IncidentPalette, Radius: "12px"}
	HistoryBadge  = BadgeStyle{Palette: IncidentPalette, Radius: "14px"}
	EntityBadge   = BadgeStyle{Palette: EntityPalette, Radius: "4px"}
)

// Color возвращает цвет бейджа для статуса
func (b BadgeStyle) Color(status models.Status) string {
	return b.Palette.Color(status)
}

// StatusToColor возвращает цвет статуса без учета регистра.
// Пустое и нераспознанное значение дают цвет Unknown.
func StatusToColor(status string) string {
	return IncidentPalette.Color(models.ParseStatus(status))
}
