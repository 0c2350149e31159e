package store

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// File is an uploaded attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Files keeps uploaded attachments in memory, keyed by generated name.
type Files struct {
	mu    sync.RWMutex
	files map[string]File
}

// NewFiles creates an empty Files.
func NewFiles() *Files {
	return &Files{files: make(map[string]File)}
}

// Save stores data under a fresh name that keeps the original extension.
func (f *Files) Save(original string, data []byte) File {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(original))
	file := File{
		Name:        name,
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}

	f.mu.Lock()
	f.files[name] = file
	f.mu.Unlock()
	return file
}

// Get returns a stored file by name.
func (f *Files) Get(name string) (File, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	file, ok := f.files[name]
	return file, ok
}
