package vendingservice

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/events"
	"github.com/GlebRadaev/vending/internal/pg"
)

// memStore is an in-memory record store whose transactions roll back on
// error. Conditional updates behave like the SQL guards. By default
// transactions are serialized; an interleaved store lets concurrent
// transactions read the same state before any of them writes.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	interleaved bool
	reads       *readGate
	rejected    atomic.Int64

	users    map[string]domain.User
	products map[string]domain.Product
	orders   map[string]domain.Order
}

type memTxKey struct{}

// memTx is the undo log of a running transaction, replayed in reverse on
// rollback.
type memTx struct {
	undo []func()
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]domain.User),
		products: make(map[string]domain.Product),
		orders:   make(map[string]domain.Order),
	}
}

// newInterleavedStore holds the first n product reads until all n have
// happened, so n concurrent reservations observe the same stock and
// credits before their conditional writes race.
func newInterleavedStore(n int) *memStore {
	s := newMemStore()
	s.interleaved = true
	s.reads = newReadGate(n)
	return s
}

type readGate struct {
	mu      sync.Mutex
	pending int
	open    chan struct{}
}

func newReadGate(n int) *readGate {
	return &readGate{pending: n, open: make(chan struct{})}
}

func (g *readGate) wait() {
	g.mu.Lock()
	if g.pending == 0 {
		g.mu.Unlock()
		return
	}
	g.pending--
	if g.pending == 0 {
		close(g.open)
	}
	g.mu.Unlock()
	<-g.open
}

func (s *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	if !s.interleaved {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}

	tx := &memTx{}
	if err := fn(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		s.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// onRollback records undo for a write made under s.mu. Writes outside a
// transaction are not undone.
func onRollback(ctx context.Context, undo func()) {
	if tx, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

func (s *memStore) user(id string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

func (s *memStore) product(id string) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

func (s *memStore) allOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

type memUsers struct{ *memStore }

func (r memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r memUsers) Debit(ctx context.Context, id string, amount int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.Credits < amount {
		r.rejected.Add(1)
		return nil, nil
	}
	u.Credits -= amount
	r.users[id] = u
	onRollback(ctx, func() { r.addCredits(id, amount) })
	return &u, nil
}

func (r memUsers) addCredits(id string, amount int64) {
	u := r.users[id]
	u.Credits += amount
	r.users[id] = u
}

func (r memUsers) Credit(ctx context.Context, id string, amount int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Credits += amount
	r.users[id] = u
	onRollback(ctx, func() { r.addCredits(id, -amount) })
	return &u, nil
}

type memProducts struct{ *memStore }

func (r memProducts) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	p, ok := r.products[id]
	r.mu.Unlock()
	if r.reads != nil {
		r.reads.wait()
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) addStock(id string, delta int64) {
	p := r.products[id]
	p.Stock += delta
	r.products[id] = p
}

func (r memProducts) DecrementStock(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Stock <= 0 {
		r.rejected.Add(1)
		return nil, nil
	}
	p.Stock--
	r.products[id] = p
	onRollback(ctx, func() { r.addStock(id, 1) })
	return &p, nil
}

func (r memProducts) IncrementStock(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	p.Stock++
	r.products[id] = p
	onRollback(ctx, func() { r.addStock(id, -1) })
	return &p, nil
}

type memOrders struct{ *memStore }

func (r memOrders) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	id := order.ID
	onRollback(ctx, func() { delete(r.orders, id) })
	return nil
}

func (r memOrders) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r memOrders) Finalize(ctx context.Context, order *domain.Order) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[order.ID]
	if !ok || o.Status != domain.StatusProcessing {
		return false, nil
	}
	r.orders[order.ID] = *order
	onRollback(ctx, func() { r.orders[o.ID] = o })
	return true, nil
}

func (r memOrders) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status == domain.StatusProcessing {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

type memCache struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func (c *memCache) Get(_ context.Context, id string) (*domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (c *memCache) Set(_ context.Context, order *domain.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if order.Status.IsTerminal() {
		c.orders[order.ID] = *order
	}
	return nil
}

func (c *memCache) Invalidate(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.orders, id)
	return nil
}

type memPublisher struct {
	mu     sync.Mutex
	events []events.Envelope
}

func (p *memPublisher) Publish(_ context.Context, e events.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *memPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
