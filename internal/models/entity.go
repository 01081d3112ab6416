package models

import "time"

// Entity - отслеживаемый объект (человек, транспорт, предмет)
type Entity struct {
	EntityID string    `json:"entity_id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Location Location  `json:"location"`
	LastSeen time.Time `json:"last_seen"`
	Status   Status    `json:"status"`
	Image    string    `json:"image,omitempty"`
}

// EntityCard - карточка сущности в представлении инцидента
type EntityCard struct {
	EntityID string    `json:"entity_id"`
	SeenTime time.Time `json:"seen_time"`
}

// Location - местоположение; любое поле может отсутствовать
type Location struct {
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
	Name string   `json:"name,omitempty"`
}

// Point создает местоположение по координатам
func Point(lat, lng float64) Location {
	return Location{Lat: &lat, Lng: &lng}
}

// Named создает местоположение с координатами и названием
func Named(name string, lat, lng float64) Location {
	loc := Point(lat, lng)
	loc.Name = name
	return loc
}

// HasCoordinates сообщает, заданы ли обе координаты
func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Lng != nil
}
