package web

import (
	"html/template"
	"time"

	"github.com/shenikar/alert_dashboard/internal/formatter"
	"github.com/shenikar/alert_dashboard/internal/models"
)

// funcMap - форматтеры, доступные шаблонам
func funcMap(loc *time.Location) template.FuncMap {
	in := func(t time.Time) time.Time {
		if t.IsZero() {
			return t
		}
		return t.In(loc)
	}

	return template.FuncMap{
		"incidentColor": formatter.IncidentBadge.Color,
		"historyColor":  formatter.HistoryBadge.Color,
		"entityColor":   formatter.EntityBadge.Color,
		"incidentRadius": func() string {
			return formatter.IncidentBadge.Radius
		},
		"historyRadius": func() string {
			return formatter.HistoryBadge.Radius
		},
		"entityRadius": func() string {
			return formatter.EntityBadge.Radius
		},
		"location": func(l models.Location) string {
			return formatter.LocationToString(&l)
		},
		// data URL собирается из base64 кадра, которым мы сами владеем
		"image": func(b64 string) template.URL {
			return template.URL(formatter.Base64ToImage(b64))
		},
		"visibility": formatter.BooleanToVisibility,
		"compact": func(t time.Time) string {
			return formatter.Compact(in(t))
		},
		"verboseDate": func(t time.Time) string {
			return formatter.VerboseDate(in(t))
		},
		"verboseClock": func(t time.Time) string {
			return formatter.VerboseClock(in(t))
		},
		"full": func(t time.Time) string {
			return formatter.Full(in(t))
		},
		"playbackTime": formatter.PlaybackTime,
		"selected": func(current *models.Incident, id string) bool {
			return current != nil && current.IncidentID == id
		},
		"selectedEntity": func(current *models.Entity, id string) bool {
			return current != nil && current.EntityID == id
		},
	}
}

func statusNames() []string {
	names := make([]string, len(models.Statuses))
	for i, s := range models.Statuses {
		names[i] = s.String()
	}
	return names
}
