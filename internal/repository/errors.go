package repository

import "errors"

// ErrNotFound 各存储后端统一的记录不存在错误
var ErrNotFound = errors.New("record not found")
