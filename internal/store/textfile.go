// Package store provides the flat-file primitives every repository is
// built on: each backing store is a UTF-8 text file of delimited lines
// with no header row.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store file names inside the data directory.
const (
	UsersFile       = "users.txt"
	StudentsFile    = "students.txt"
	ProfessorsFile  = "professors.txt"
	AdminFile       = "admin.txt"
	TimetableFile   = "timetable.txt"
	HolidaysFile    = "holidays.txt"
	WorkingDaysFile = "working_days.txt"
	AttendanceFile  = "attendance.txt"
)

// File is one flat text store. Reads treat a missing file as an empty
// store; writes surface every failure to the caller.
type File struct {
	path string
}

// NewFile binds a store name inside a data directory.
func NewFile(dir, name string) *File {
	return &File{path: filepath.Join(dir, name)}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// ReadLines returns every non-blank line of the store in file order.
// A missing file yields an empty slice and no error.
func (f *File) ReadLines() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return lines, nil
}

// Append adds lines to the end of the store, creating it if needed.
func (f *File) Append(lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", f.path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("append to %s: %w", f.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("append to %s: %w", f.path, err)
	}
	return nil
}

// Rewrite replaces the whole store with the given lines. The new content
// is written to a temp file in the same directory and swapped in with a
// rename so an interrupted write never leaves the store half-written.
func (f *File) Rewrite(lines []string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", f.path, err)
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("write temp for %s: %w", f.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp for %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp for %s: %w", f.path, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("swap %s: %w", f.path, err)
	}
	return nil
}
