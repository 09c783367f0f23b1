package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trenner1/bottle-app/internal/core/domain"
	"github.com/trenner1/bottle-app/internal/port"
)

var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrDuplicateName     = errors.New("duplicate name")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Ledger is the aggregate root for a session's inventory. It owns the
// ordered record list, the stock index, the breakage flag and event log, and
// the ID allocator; every mutation flows through it and runs as one critical
// section, so compound steps such as the uniqueness check plus the insert
// can never interleave.
type Ledger struct {
	mu     sync.Mutex
	index  port.StockIndex
	beers  []domain.Beer
	nextID int

	flagged bool
	broken  domain.Breakage
	events  []domain.BreakageEvent

	log *zap.Logger
	now func() time.Time
}

// NewLedger builds an empty ledger over the given index. A nil logger
// disables logging.
func NewLedger(index port.StockIndex, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		index:  index,
		nextID: 1,
		log:    log,
		now:    time.Now,
	}
}

// Add stocks a new beer and returns its assigned ID. Quantities must be
// positive, and the name must not be stocked already — the index, not the
// record list, decides that; callers are expected to edit the existing
// record instead of re-adding it. While the breakage flag is set, every
// successful add is also logged as broken stock.
func (l *Ledger) Add(beer domain.Beer) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if beer.Quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if l.index.Has(beer.Name) {
		return 0, ErrDuplicateName
	}

	beer.ID = l.nextID
	l.nextID++
	beer.UpdatedAt = l.now()

	l.index.Increment(beer.Name, beer.Quantity)
	l.index.Increment(port.TotalKey, beer.Quantity)
	l.beers = append(l.beers, beer)

	l.log.Info("beer added",
		zap.Int("id", beer.ID),
		zap.String("name", beer.Name),
		zap.Int("quantity", beer.Quantity))

	if l.flagged {
		event := domain.BreakageEvent{
			ID:       uuid.New().String(),
			Name:     beer.Name,
			Quantity: beer.Quantity,
			At:       beer.UpdatedAt,
		}
		l.events = append(l.events, event)
		l.broken.Add(beer.Quantity)
		l.log.Warn("breakage flagged during add",
			zap.String("event_id", event.ID),
			zap.String("name", beer.Name),
			zap.Int("quantity", beer.Quantity),
			zap.Int("total_broken", l.broken.Total))
	}

	return beer.ID, nil
}

// FlagBreakage turns the breakage flag on. Once set it stays set for the
// rest of the session.
func (l *Ledger) FlagBreakage() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.flagged = true
	l.log.Warn("breakage flagged")
}

// Remove erases the record with the given ID and reduces the per-name and
// grand-total counters by its quantity. The ID is retired for good.
func (l *Ledger) Remove(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, beer := range l.beers {
		if beer.ID != id {
			continue
		}
		l.index.Deduct(beer.Name, beer.Quantity)
		l.index.Deduct(port.TotalKey, beer.Quantity)
		l.beers = append(l.beers[:i], l.beers[i+1:]...)
		l.log.Info("beer removed",
			zap.Int("id", id),
			zap.String("name", beer.Name),
			zap.Int("quantity", beer.Quantity))
		return nil
	}
	return ErrNotFound
}

// RemoveAmount takes amount bottles out of stock without naming a record:
// the first beer whose own quantity and whose aggregate counter can both
// satisfy the amount is charged, falling back to the grand-total counter
// when no single name qualifies. On a named success the record's UpdatedAt
// is stamped; a grand-total fallback touches no record.
func (l *Ledger) RemoveAmount(amount int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return ErrInvalidQuantity
	}

	name := port.TotalKey
	for _, beer := range l.beers {
		count, _ := l.index.Get(beer.Name)
		if beer.Quantity >= amount && count >= amount {
			name = beer.Name
			break
		}
	}

	if !l.index.Decrement(name, amount) {
		return ErrInsufficientStock
	}

	for i := range l.beers {
		if l.beers[i].Name == name {
			l.beers[i].UpdatedAt = l.now()
			break
		}
	}

	l.log.Info("stock removed",
		zap.String("name", name),
		zap.Int("amount", amount))
	if l.flagged {
		l.log.Warn("breakage flagged during remove", zap.String("name", name))
	}
	return nil
}

// Edit applies the non-nil fields of update to the record with the given
// name. The size magnitude is applied against the metric flag as it stood
// before the edit, so flipping the flag in the same update never reconverts
// the freshly entered size. Quantity edits change the record only — the
// counters stay governed by add/remove deltas. The new name is not checked
// against the index.
func (l *Ledger) Edit(name string, update domain.BeerUpdate) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.beers {
		beer := &l.beers[i]
		if beer.Name != name {
			continue
		}
		if update.Name != nil {
			beer.Name = *update.Name
		}
		if update.Style != nil {
			beer.Style = *update.Style
		}
		if update.AlcoholContent != nil {
			beer.AlcoholContent = *update.AlcoholContent
		}
		if update.Size != nil {
			beer.Size.SetSize(*update.Size, beer.Size.Metric)
		}
		if update.Metric != nil {
			beer.Size.Metric = *update.Metric
		}
		if update.Quantity != nil {
			beer.Quantity = *update.Quantity
		}
		if update.Barcode != nil {
			beer.Barcode = *update.Barcode
		}
		beer.UpdatedAt = l.now()

		l.log.Info("beer edited",
			zap.Int("id", beer.ID),
			zap.String("name", name))
		return nil
	}
	return ErrNotFound
}

// Exists reports whether name is present in the stock index.
func (l *Ledger) Exists(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Has(name)
}

// TotalCount returns the grand total across every name. It fails with
// ErrNotFound until the first successful Add creates the total counter.
func (l *Ledger) TotalCount() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total, ok := l.index.Get(port.TotalKey)
	if !ok {
		return 0, ErrNotFound
	}
	return total, nil
}

// List returns a copy of the live records in insertion order.
func (l *Ledger) List() []domain.Beer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Beer(nil), l.beers...)
}

// FlaggedEvents returns a copy of the breakage events in the order they
// were logged.
func (l *Ledger) FlaggedEvents() []domain.BreakageEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.BreakageEvent(nil), l.events...)
}

// Totals returns a snapshot of every per-name counter, the grand total
// included.
func (l *Ledger) Totals() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Snapshot()
}

// Flagged reports whether breakage has been flagged this session.
func (l *Ledger) Flagged() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flagged
}

// TotalBroken returns the running total of bottles recorded as broken.
func (l *Ledger) TotalBroken() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.broken.Total
}
