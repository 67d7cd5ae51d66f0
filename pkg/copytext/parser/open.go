// Package parser loads workbooks through excelize into models.Workbook.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/copytext-go/pkg/copytext/models"
	"github.com/xuri/excelize/v2"
)

// OpenFile reads the workbook at path.
func OpenFile(path string) (*models.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	return ReadWorkbook(f, filepath.Base(path))
}

// OpenReader reads a workbook from r without touching the filesystem.
func OpenReader(r io.Reader, bookName string) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ReadWorkbook(f, bookName)
}

// OpenBytes reads a workbook held in memory.
func OpenBytes(b []byte, bookName string) (*models.Workbook, error) {
	return OpenReader(bytes.NewReader(b), bookName)
}
