package models

import "strings"

// Status - закрытый набор статусов инцидентов и сущностей
type Status string

const (
	StatusActive    Status = "Active"
	StatusConfirmed Status = "Confirmed"
	StatusFalse     Status = "False"
	StatusPending   Status = "Pending"
	StatusUnknown   Status = "Unknown"
)

// Statuses перечисляет все статусы в порядке отображения
var Statuses = []Status{StatusActive, StatusConfirmed, StatusFalse, StatusPending, StatusUnknown}

// ParseStatus без учета регистра; нераспознанное значение дает StatusUnknown
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive
	case "confirmed":
		return StatusConfirmed
	case "false":
		return StatusFalse
	case "pending":
		return StatusPending
	default:
		return StatusUnknown
	}
}

// IsKnownStatus сообщает, входит ли строка в набор статусов (включая Unknown)
func IsKnownStatus(s string) bool {
	return ParseStatus(s) != StatusUnknown || strings.EqualFold(strings.TrimSpace(s), string(StatusUnknown))
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalText приводит входное значение к канонической форме
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}
