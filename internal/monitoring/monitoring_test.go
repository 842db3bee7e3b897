package monitoring

import (
	"testing"
	"time"

	"github.com/osmike/cronpick/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMonitoring_SaveChange(t *testing.T) {
	m := New()
	now := time.Now()

	m.SaveChange(domain.ChangeDTO{Expression: "0 0 * * *", Dialect: domain.Standard, Type: domain.Daily, At: now})
	m.SaveChange(domain.ChangeDTO{Expression: "0 0 * * 1", Dialect: domain.Standard, Type: domain.Weekly, At: now})
	m.SaveChange(domain.ChangeDTO{Expression: "0 0 0 1/1 * ? *", Dialect: domain.Quartz, Type: domain.Daily, At: now})

	changes := m.GetChanges()
	assert.Len(t, changes, 3)
	assert.Equal(t, "0 0 * * *", changes[0].Expression)

	latest := m.GetLatest()
	assert.Equal(t, "0 0 * * 1", latest[domain.Standard].Expression)
	assert.Equal(t, "0 0 0 1/1 * ? *", latest[domain.Quartz].Expression)
}

func TestMonitoring_GetChangesReturnsCopy(t *testing.T) {
	m := New()
	m.SaveChange(domain.ChangeDTO{Expression: "0 0 * * *"})

	changes := m.GetChanges()
	changes[0].Expression = "mutated"

	assert.Equal(t, "0 0 * * *", m.GetChanges()[0].Expression)
}
