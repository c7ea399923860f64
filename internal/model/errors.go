package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// IOError ошибка файловой операции с путем
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError оборачивает ошибку файловой операции. Путь и операция из
// *fs.PathError и *os.LinkError отбрасываются, их несет сам IOError.
func NewIOError(op, path string, err error) *IOError {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	switch {
	case errors.As(err, &pathErr):
		err = pathErr.Err
	case errors.As(err, &linkErr):
		err = linkErr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
