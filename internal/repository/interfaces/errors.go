package interfaces

import "errors"

// ErrNotFound возвращается, когда сущность не найдена в хранилище.
var ErrNotFound = errors.New("entity not found")

// ErrEmailExists возвращается, когда пользователь с таким email уже существует.
var ErrEmailExists = errors.New("email already exists")

// ErrUsernameExists возвращается, когда пользователь с таким username уже существует.
var ErrUsernameExists = errors.New("username already exists")

// ErrDuplicateEntry возвращается, когда для футболиста уже существует запись
// измерения за этот календарный день в данном домене.
var ErrDuplicateEntry = errors.New("entry already exists for this date")
