package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles JSON output formatting.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatUsers formats a list of users as indented JSON.
func (f *Formatter) FormatUsers(users []UserDTO) error {
	return f.encode(users)
}

// FormatTasks formats a list of tasks as indented JSON.
func (f *Formatter) FormatTasks(tasks []TaskDTO) error {
	return f.encode(tasks)
}

// FormatStatistics formats a status-count map as indented JSON.
func (f *Formatter) FormatStatistics(stats map[string]int) error {
	return f.encode(stats)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
