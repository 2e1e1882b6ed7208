package library

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseID is the first item id handed out by a fresh catalog.
	DefaultBaseID = 1000

	// DefaultOverdueFee is the flat amount posted when an overdue item
	// comes back.
	DefaultOverdueFee = 30
)

// Config carries the tunable catalog parameters. Zero values fall back to
// the defaults above.
type Config struct {
	BaseID     int
	OverdueFee int
}

// Catalog owns the item collection, the id allocator, and the shared fine
// state. A single mutex serializes every operation so an item's state flip
// and the matching fine posting land as one atomic step.
type Catalog struct {
	mu         sync.Mutex
	items      []*Item
	nextID     int
	policy     FinePolicy
	fines      *FineManager
	overdueFee int
}

func NewCatalog(policy FinePolicy, fines *FineManager, cfg Config) *Catalog {
	if cfg.BaseID <= 0 {
		cfg.BaseID = DefaultBaseID
	}
	if cfg.OverdueFee <= 0 {
		cfg.OverdueFee = DefaultOverdueFee
	}
	return &Catalog{
		nextID:     cfg.BaseID,
		policy:     policy,
		fines:      fines,
		overdueFee: cfg.OverdueFee,
	}
}

// ------------------ Construction ------------------

func (c *Catalog) AddBook(title, author string, pages int) *Item {
	return c.add(&Item{Kind: KindBook, Title: title, Author: author, Pages: pages})
}

func (c *Catalog) AddAudioBook(title, author string, hours float64) *Item {
	return c.add(&Item{Kind: KindAudioBook, Title: title, Author: author, Hours: hours})
}

func (c *Catalog) AddEMagazine(title, author string, issue int) *Item {
	return c.add(&Item{Kind: KindEMagazine, Title: title, Author: author, Issue: issue})
}

func (c *Catalog) add(it *Item) *Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	it.ID = c.nextID
	c.nextID++
	it.Available = true
	c.items = append(c.items, it)
	return it
}

// ------------------ Lookup ------------------

func (c *Catalog) Get(id int) (*Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(id)
}

// find assumes the lock is held.
func (c *Catalog) find(id int) (*Item, error) {
	for _, it := range c.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "id %d", id)
}

// Items returns the catalog in creation order.
func (c *Catalog) Items() []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Search returns every item whose title or author contains keyword,
// case-insensitively, in catalog order.
func (c *Catalog) Search(keyword string) []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := strings.ToLower(keyword)
	var matches []*Item
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Title), k) ||
			strings.Contains(strings.ToLower(it.Author), k) {
			matches = append(matches, it)
		}
	}
	return matches
}

// Borrowed lists the currently unavailable items in catalog order.
func (c *Catalog) Borrowed() []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*Item
	for _, it := range c.items {
		if !it.Available {
			out = append(out, it)
		}
	}
	return out
}

// ------------------ Circulation ------------------

func (c *Catalog) Borrow(id, days int) (BorrowReceipt, error) {
	if days < 0 {
		return BorrowReceipt{}, errors.Wrapf(ErrInvalidArgument, "negative day count %d", days)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.find(id)
	if err != nil {
		return BorrowReceipt{}, err
	}
	return it.Borrow(days, c.policy, c.fines), nil
}

func (c *Catalog) Return(id int) (ReturnReceipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.find(id)
	if err != nil {
		return ReturnReceipt{}, err
	}
	return it.Return(c.overdueFee, c.fines), nil
}

func (c *Catalog) Buy(id, price int) (BuyReceipt, error) {
	if price < 0 {
		return BuyReceipt{}, errors.Wrapf(ErrInvalidArgument, "negative price %d", price)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.find(id)
	if err != nil {
		return BuyReceipt{}, err
	}
	return it.MarkSold(price, c.fines), nil
}

// NextDay applies one simulated day to every item.
func (c *Catalog) NextDay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		it.NextDay()
	}
}

// NextDayItem applies one simulated day to a single item.
func (c *Catalog) NextDayItem(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.find(id)
	if err != nil {
		return err
	}
	it.NextDay()
	return nil
}

// ------------------ Reporting ------------------

// FineRecords snapshots the non-zero fines under the catalog lock.
func (c *Catalog) FineRecords() []FineRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fines.FineRecords()
}

// Stats snapshots the aggregate report under the catalog lock.
func (c *Catalog) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fines.Stats(c.items)
}
