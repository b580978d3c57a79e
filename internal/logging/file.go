package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileWriter appends logs to a file and keeps a limited number of rotated backups.
// Interactive commands log here so log lines do not corrupt the terminal UI.
type FileWriter struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewFileWriter opens path for appending, creating parent directories.
func NewFileWriter(path string, maxSizeMB, maxBackups int) (*FileWriter, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	w := &FileWriter{
		path:       path,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) open() error {
	if info, err := os.Stat(w.path); err == nil {
		w.size = info.Size()
	} else {
		w.size = 0
	}

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	w.file = file
	return nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}

	if w.size+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// rotate shifts path.N to path.N+1, dropping backups past maxBackups.
func (w *FileWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	w.file = nil

	if w.maxBackups <= 0 {
		if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to truncate log file: %w", err)
		}
		return w.open()
	}

	_ = os.Remove(w.backupPath(w.maxBackups))
	for i := w.maxBackups - 1; i >= 1; i-- {
		if _, err := os.Stat(w.backupPath(i)); err == nil {
			if err := os.Rename(w.backupPath(i), w.backupPath(i+1)); err != nil {
				return fmt.Errorf("failed to rotate log file: %w", err)
			}
		}
	}
	if err := os.Rename(w.path, w.backupPath(1)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return w.open()
}

func (w *FileWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", w.path, n)
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
