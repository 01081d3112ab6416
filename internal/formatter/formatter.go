// Package formatter содержит чистые функции преобразования доменных значений
// в строки для отображения. Ни одна функция не возвращает ошибку.
package formatter

import (
	"fmt"
	"reflect"

	"github.com/shenikar/alert_dashboard/internal/models"
)

const (
	LocationUnknown     = "Unknown"
	LocationUnavailable = "Location data unavailable"

	imageDataPrefix = "data:image/jpeg;base64,"

	VisibilityShown  = "block"
	VisibilityHidden = "none"
)

// LocationToString форматирует местоположение: название, затем координаты
// с шестью знаками после запятой, затем текст-заглушка.
func LocationToString(location *models.Location) string {
	if location == nil {
		return LocationUnknown
	}
	if location.Name != "" {
		return location.Name
	}
	if location.HasCoordinates() {
		return fmt.Sprintf("%.6f, %.6f", *location.Lat, *location.Lng)
	}
	return LocationUnavailable
}

// Base64ToImage оборачивает base64 JPEG в data URL; для пустого ввода - ""
func Base64ToImage(base64 string) string {
	if base64 == "" {
		return ""
	}
	return imageDataPrefix + base64
}

func BooleanToVisibility(value bool) string {
	if value {
		return VisibilityShown
	}
	return VisibilityHidden
}

func NonZeroToVisibility(count int) string {
	return BooleanToVisibility(count > 0)
}

func ZeroToVisibility(count int) string {
	return BooleanToVisibility(count == 0)
}

// NullToFalse возвращает false для nil (в том числе типизированного nil)
func NullToFalse(value any) bool {
	return !isNil(value)
}

func InvertedNullVisibility(value any) string {
	return BooleanToVisibility(isNil(value))
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
