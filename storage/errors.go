package storage

import "errors"

var errWriteFailed = errors.New("storage: write failed")
