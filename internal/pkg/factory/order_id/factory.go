package order_id

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// OrderIDFactory produces human readable order identifiers of the form
// ORD-20260102-150405-1234. The random suffix disambiguates orders
// created within the same second.
type OrderIDFactory struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func New() *OrderIDFactory {
	return &OrderIDFactory{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

func (f *OrderIDFactory) NewOrderID() string {
	f.mu.Lock()
	suffix := f.rng.Intn(10000)
	f.mu.Unlock()

	return fmt.Sprintf("ORD-%s-%04d", f.now().UTC().Format("20060102-150405"), suffix)
}
