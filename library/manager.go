package library

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// LibraryManager is a thin facade over the catalog, fine state, and session
// ledger, keeping CLI code simple. It is the only surface the drivers touch.
type LibraryManager struct {
	catalog *Catalog
	ledger  *Ledger
}

// NewLibraryManager wires the core together and opens the session ledger.
func NewLibraryManager(policy FinePolicy, cfg Config) (*LibraryManager, error) {
	ledger, err := NewLedger()
	if err != nil {
		return nil, err
	}
	return &LibraryManager{
		catalog: NewCatalog(policy, NewFineManager(), cfg),
		ledger:  ledger,
	}, nil
}

// Close closes the session ledger.
func (lm *LibraryManager) Close() error { return lm.ledger.Close() }

// SeedDefaultCatalog loads the standard three-item shelf.
func (lm *LibraryManager) SeedDefaultCatalog() {
	lm.catalog.AddBook("Harry Potter and the Sorcerer's Stone", "J.K. Rowling", 309)
	lm.catalog.AddAudioBook("Becoming", "Michelle Obama", 19.5)
	lm.catalog.AddEMagazine("National Geographic", "Various", 202)
}

// ------------------ Catalog helpers ------------------

func (lm *LibraryManager) AddBook(title, author string, pages int) *Item {
	return lm.catalog.AddBook(title, author, pages)
}

func (lm *LibraryManager) AddAudioBook(title, author string, hours float64) *Item {
	return lm.catalog.AddAudioBook(title, author, hours)
}

func (lm *LibraryManager) AddEMagazine(title, author string, issue int) *Item {
	return lm.catalog.AddEMagazine(title, author, issue)
}

func (lm *LibraryManager) Get(id int) (*Item, error) { return lm.catalog.Get(id) }
func (lm *LibraryManager) Items() []*Item            { return lm.catalog.Items() }
func (lm *LibraryManager) Search(keyword string) []*Item {
	return lm.catalog.Search(keyword)
}
func (lm *LibraryManager) Borrowed() []*Item { return lm.catalog.Borrowed() }

// ------------------ Circulation ------------------

// Borrow runs the borrow on the catalog and, when it went through, records
// it in the ledger. A ledger error does not undo the catalog change.
func (lm *LibraryManager) Borrow(id, days int) (BorrowReceipt, error) {
	receipt, err := lm.catalog.Borrow(id, days)
	if err != nil {
		return receipt, err
	}
	if receipt.Status == BorrowOK {
		if err := lm.ledger.RecordBorrow(id, receipt.Days, receipt.FineTotal); err != nil {
			return receipt, err
		}
	}
	return receipt, nil
}

func (lm *LibraryManager) Return(id int) (ReturnReceipt, error) {
	receipt, err := lm.catalog.Return(id)
	if err != nil {
		return receipt, err
	}
	if receipt.Status == ReturnOK {
		if err := lm.ledger.RecordReturn(id, receipt.OverdueFee); err != nil {
			return receipt, err
		}
	}
	return receipt, nil
}

func (lm *LibraryManager) Buy(id, price int) (BuyReceipt, error) {
	receipt, err := lm.catalog.Buy(id, price)
	if err != nil {
		return receipt, err
	}
	if receipt.Status == BuyOK {
		if err := lm.ledger.RecordPurchase(id, price); err != nil {
			return receipt, err
		}
	}
	return receipt, nil
}

// NextDay advances every item by one simulated day and records the tick.
func (lm *LibraryManager) NextDay() error {
	lm.catalog.NextDay()
	return lm.ledger.RecordDay()
}

// ------------------ Capabilities ------------------

// PlaySample returns the flavor line for the item's audio sample.
func (lm *LibraryManager) PlaySample(id int) (string, error) {
	it, err := lm.catalog.Get(id)
	if err != nil {
		return "", err
	}
	if !it.CanPlaySample() {
		return "", errors.Wrapf(ErrInvalidArgument, "item %d has no audio sample", id)
	}
	return it.PlaySample(), nil
}

// ArchiveIssue returns the flavor line for archiving the item's issue.
func (lm *LibraryManager) ArchiveIssue(id int) (string, error) {
	it, err := lm.catalog.Get(id)
	if err != nil {
		return "", err
	}
	if !it.CanArchive() {
		return "", errors.Wrapf(ErrInvalidArgument, "item %d has no issue to archive", id)
	}
	return it.Archive(), nil
}

// ------------------ Reporting ------------------

func (lm *LibraryManager) FineRecords() []FineRecord { return lm.catalog.FineRecords() }
func (lm *LibraryManager) Stats() Stats              { return lm.catalog.Stats() }

// History returns the newest ledger entries first.
func (lm *LibraryManager) History(limit int) ([]LedgerEntry, error) {
	return lm.ledger.Recent(limit)
}

// ActivityCounts tallies recorded ledger events per kind.
func (lm *LibraryManager) ActivityCounts() (map[string]int, error) {
	return lm.ledger.CountByKind()
}

// Report is the full session snapshot rendered by the export command.
type Report struct {
	Session string       `json:"session"`
	Items   []*Item      `json:"items"`
	Fines   []FineRecord `json:"fines"`
	Stats   Stats        `json:"stats"`
}

// ExportJSON renders the session snapshot as indented JSON.
func (lm *LibraryManager) ExportJSON() ([]byte, error) {
	report := Report{
		Session: lm.ledger.Session().String(),
		Items:   lm.catalog.Items(),
		Fines:   lm.catalog.FineRecords(),
		Stats:   lm.catalog.Stats(),
	}
	out, err := jsoniter.ConfigFastest.MarshalIndent(report, "", "  ")
	return out, errors.Wrap(err, "export report")
}
