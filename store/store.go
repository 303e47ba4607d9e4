package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"study-planner/models"
)

// Header is the fixed column header of the task file.
var Header = []string{"subject", "description", "due date", "status"}

var ErrNotFound = errors.New("task not found")

var Tasks *TaskStore

// Open initializes the package-level store from SP_TASKS_FILE.
func Open() {
	path := os.Getenv("SP_TASKS_FILE")
	if path == "" {
		path = "tasks.csv"
	}
	Tasks = New(path)
	log.Printf("Task file: %s", path)
}

// TaskStore persists tasks as rows of a comma-separated file, in
// insertion order. The original host ran single-threaded; Go's HTTP
// server does not, so every file access holds the mutex.
type TaskStore struct {
	mu   sync.Mutex
	path string
}

func New(path string) *TaskStore {
	return &TaskStore{path: path}
}

func (s *TaskStore) Path() string {
	return s.path
}

// Append adds exactly one row to the end of the file, creating the file
// with its header on first write.
func (s *TaskStore) Append(t models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat task file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(record(t)); err != nil {
		return fmt.Errorf("write task: %w", err)
	}
	w.Flush()
	return w.Error()
}

// All returns every task in file order. A missing file is an empty store.
func (s *TaskStore) All() ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Get returns the task at 1-based position n.
func (s *TaskStore) Get(n int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return models.Task{}, err
	}
	if n < 1 || n > len(tasks) {
		return models.Task{}, ErrNotFound
	}
	return tasks[n-1], nil
}

// SetStatus rewrites the file with the status of row n changed.
func (s *TaskStore) SetStatus(n int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return err
	}
	if n < 1 || n > len(tasks) {
		return ErrNotFound
	}
	tasks[n-1].Status = status
	return s.rewrite(tasks)
}

// Delete rewrites the file without row n, preserving the order of the
// remaining rows.
func (s *TaskStore) Delete(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return err
	}
	if n < 1 || n > len(tasks) {
		return ErrNotFound
	}
	return s.rewrite(append(tasks[:n-1], tasks[n:]...))
}

func (s *TaskStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

func (s *TaskStore) readAll() ([]models.Task, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	// Header row, absent only when the file is empty.
	if _, err := r.Read(); err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var tasks []models.Task
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return tasks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read task row: %w", err)
		}
		tasks = append(tasks, models.Task{
			Subject:     rec[0],
			Description: rec[1],
			DueDate:     rec[2],
			Status:      rec[3],
		})
	}
}

// rewrite replaces the file contents atomically via a temp file in the
// same directory followed by a rename.
func (s *TaskStore) rewrite(tasks []models.Task) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range tasks {
		if err := w.Write(record(t)); err != nil {
			tmp.Close()
			return fmt.Errorf("write task: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func record(t models.Task) []string {
	return []string{t.Subject, t.Description, t.DueDate, t.Status}
}
