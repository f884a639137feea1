package graph

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeListNotFound = errors.New("employee list not found")
)
