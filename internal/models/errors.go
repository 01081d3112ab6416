package models

import "errors"

// ErrNotFound возвращается источниками данных, когда запись отсутствует
var ErrNotFound = errors.New("not found")
