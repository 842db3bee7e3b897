package monitoring

import (
	"github.com/osmike/cronpick/internal/domain"
	"sync"
)

// Monitoring keeps every expression a picker publishes, in publication order.
type Monitoring struct {
	mu      sync.RWMutex
	changes []domain.ChangeDTO
	latest  *sync.Map
}

func New() *Monitoring {
	return &Monitoring{
		latest: &sync.Map{},
	}
}

// SaveChange appends dto to the history and remembers it as the latest
// expression of its dialect.
func (m *Monitoring) SaveChange(dto domain.ChangeDTO) {
	m.mu.Lock()
	m.changes = append(m.changes, dto)
	m.mu.Unlock()

	m.latest.Store(dto.Dialect, dto)
}

// GetChanges returns a copy of the history.
func (m *Monitoring) GetChanges() []domain.ChangeDTO {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.ChangeDTO{}, m.changes...)
}

// GetLatest returns the last expression published per dialect.
func (m *Monitoring) GetLatest() map[domain.Dialect]domain.ChangeDTO {
	latest := make(map[domain.Dialect]domain.ChangeDTO)
	m.latest.Range(func(key, value interface{}) bool {
		latest[key.(domain.Dialect)] = value.(domain.ChangeDTO)
		return true
	})
	return latest
}
