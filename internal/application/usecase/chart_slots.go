package usecase

import (
	"errors"
	"sync"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
)

// ChartSlot guarda o gráfico atualmente exibido de um tipo.
// O handle anterior é sempre descartado antes de um novo ser criado.
type ChartSlot struct {
	mu     sync.Mutex
	handle repository.ChartHandle
}

// Replace disposes the current handle and stores the one returned by acquire.
// An empty series leaves the slot cleared.
func (s *ChartSlot) Replace(acquire func() (repository.ChartHandle, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.release(); err != nil {
		return err
	}

	handle, err := acquire()
	if err != nil {
		if errors.Is(err, entity.ErrEmptySeries) {
			return nil
		}
		return err
	}
	s.handle = handle
	return nil
}

// Handle returns the current handle, or nil.
func (s *ChartSlot) Handle() repository.ChartHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

// Close descarta o handle atual.
func (s *ChartSlot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.release()
}

func (s *ChartSlot) release() error {
	if s.handle == nil {
		return nil
	}
	err := s.handle.Dispose()
	s.handle = nil
	return err
}

// ChartSlots keeps one slot per dashboard chart.
type ChartSlots struct {
	repo  repository.ChartRepository
	slots map[entity.ChartKind]*ChartSlot
}

// NewChartSlots creates empty slots for every chart kind.
func NewChartSlots(repo repository.ChartRepository) *ChartSlots {
	slots := make(map[entity.ChartKind]*ChartSlot, len(entity.ChartKinds))
	for _, kind := range entity.ChartKinds {
		slots[kind] = &ChartSlot{}
	}
	return &ChartSlots{repo: repo, slots: slots}
}

// Render redraws the three charts of a view into dir, replacing the previous ones.
// Returns the paths written, in display order.
func (c *ChartSlots) Render(view entity.DashboardView, dir string) ([]string, error) {
	var paths []string
	for _, kind := range entity.ChartKinds {
		series, _ := view.Series(kind)
		slot := c.slots[kind]

		err := slot.Replace(func() (repository.ChartHandle, error) {
			return c.repo.Render(series, dir)
		})
		if err != nil {
			return paths, err
		}
		if h := slot.Handle(); h != nil && h.Path() != "" {
			paths = append(paths, h.Path())
		}
	}
	return paths, nil
}

// Slot returns the slot of a chart kind.
func (c *ChartSlots) Slot(kind entity.ChartKind) *ChartSlot {
	return c.slots[kind]
}

// Close disposes every chart still held.
func (c *ChartSlots) Close() error {
	var errs []error
	for _, kind := range entity.ChartKinds {
		if err := c.slots[kind].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
