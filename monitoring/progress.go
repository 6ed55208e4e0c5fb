package monitoring

import (
	"sync"
	"time"
)

// A ProgressBar tracks how far a grid evaluation has advanced, in completed
// outer rows.
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
}

// Add advances the bar by a certain amount.
func (b *ProgressBar) Add(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// Done reports whether the bar has reached its total.
func (b *ProgressBar) Done() bool {
	b.Lock()
	defer b.Unlock()

	return b.Finished >= b.Total
}
