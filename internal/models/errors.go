package models

import "errors"

// ErrNotFound возвращается репозиторием, когда запись отсутствует
var ErrNotFound = errors.New("not found")
