package media

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Memory keeps uploads in process. Used by tests and local runs without a
// media host.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string

	// FailUpload and FailDestroy force errors.
	FailUpload  error
	FailDestroy error
}

func NewMemory(baseURL string) *Memory {
	return &Memory{
		objects: make(map[string][]byte),
		baseURL: baseURL,
	}
}

func (m *Memory) Upload(_ context.Context, filename string, data []byte) (Ref, error) {
	if m.FailUpload != nil {
		return Ref{}, m.FailUpload
	}
	ext, _, err := ContentType(filename, data)
	if err != nil {
		return Ref{}, err
	}

	key := fmt.Sprintf("%s/%s%s", DefaultFolder, uuid.NewString(), ext)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)

	return Ref{URL: m.baseURL + "/" + key, Handle: key}, nil
}

func (m *Memory) Destroy(_ context.Context, handle string) error {
	if m.FailDestroy != nil {
		return m.FailDestroy
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, handle)
	return nil
}

// Has reports whether handle is currently stored.
func (m *Memory) Has(handle string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[handle]
	return ok
}

// Len is the number of stored objects.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
