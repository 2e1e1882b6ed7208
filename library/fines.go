package library

import "sort"

// FineManager accumulates fines per item id plus a running purchase total.
// Both accumulators only ever grow; nothing in a session subtracts.
type FineManager struct {
	fines          map[int]int
	totalPurchases int
}

func NewFineManager() *FineManager {
	return &FineManager{fines: make(map[int]int)}
}

// AddFine posts amount against id, creating the entry on first use.
// Amounts are not validated; posting is purely additive.
func (m *FineManager) AddFine(id, amount int) {
	m.fines[id] += amount
}

// AddPurchase adds amount to the running purchase total.
func (m *FineManager) AddPurchase(amount int) {
	m.totalPurchases += amount
}

// Fine returns the accumulated fine for id, zero when none was posted.
func (m *FineManager) Fine(id int) int { return m.fines[id] }

func (m *FineManager) TotalPurchases() int { return m.totalPurchases }

// FineRecord pairs an item id with its accumulated fine.
type FineRecord struct {
	ItemID int `json:"item_id"`
	Amount int `json:"amount"`
}

// FineRecords lists every non-zero fine sorted by item id. An empty slice
// is the explicit "no fines recorded" indicator for the caller.
func (m *FineManager) FineRecords() []FineRecord {
	records := make([]FineRecord, 0, len(m.fines))
	for id, amount := range m.fines {
		if amount == 0 {
			continue
		}
		records = append(records, FineRecord{ItemID: id, Amount: amount})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ItemID < records[j].ItemID })
	return records
}

// Stats is the aggregate report over one session.
type Stats struct {
	MostBorrowed      string `json:"most_borrowed,omitempty"`
	MostBorrowedCount int    `json:"most_borrowed_count"`
	TotalFines        int    `json:"total_fines"`
	TotalPurchases    int    `json:"total_purchases"`
}

// Stats reduces the supplied item collection and the two accumulators.
// The most-borrowed winner is the first item in the supplied order with the
// strictly greatest borrow count; an empty collection reports no winner.
func (m *FineManager) Stats(items []*Item) Stats {
	s := Stats{TotalPurchases: m.totalPurchases}

	var most *Item
	for _, it := range items {
		if most == nil || it.BorrowCount > most.BorrowCount {
			most = it
		}
	}
	if most != nil {
		s.MostBorrowed = most.Title
		s.MostBorrowedCount = most.BorrowCount
	}

	for _, amount := range m.fines {
		s.TotalFines += amount
	}
	return s
}
