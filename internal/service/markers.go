package service

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/alert_dashboard/internal/formatter"
	"github.com/shenikar/alert_dashboard/internal/models"
)

const (
	MarkerKindIncident = "incident"
	MarkerKindEntity   = "entity"
)

// Markers строит коллекцию точек GeoJSON. Записи без координат пропускаются.
func Markers(incidents []models.Incident, entities []models.Entity) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(incidents)+len(entities))}

	for _, incident := range incidents {
		if !incident.Location.HasCoordinates() {
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       incident.IncidentID,
			Geometry: point(incident.Location),
			Properties: map[string]interface{}{
				"kind":     MarkerKindIncident,
				"status":   incident.Status,
				"color":    formatter.IncidentBadge.Color(incident.Status),
				"about":    incident.About,
				"location": formatter.LocationToString(&incident.Location),
			},
		})
	}

	for _, entity := range entities {
		if !entity.Location.HasCoordinates() {
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       entity.EntityID,
			Geometry: point(entity.Location),
			Properties: map[string]interface{}{
				"kind":     MarkerKindEntity,
				"status":   entity.Status,
				"color":    formatter.EntityBadge.Color(entity.Status),
				"name":     entity.Name,
				"type":     entity.Type,
				"location": formatter.LocationToString(&entity.Location),
			},
		})
	}
	return fc
}

// GeoJSON хранит координаты в порядке lng, lat
func point(location models.Location) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{*location.Lng, *location.Lat})
}
