package library

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFineAccumulates(t *testing.T) {
	m := NewFineManager()

	m.AddFine(1000, 50)
	m.AddFine(1000, 30)
	m.AddFine(1001, 10)

	assert.Equal(t, 80, m.Fine(1000))
	assert.Equal(t, 10, m.Fine(1001))
	assert.Equal(t, 0, m.Fine(9999))
}

func TestFineRecordsSortedAndNonZero(t *testing.T) {
	m := NewFineManager()
	m.AddFine(1002, 20)
	m.AddFine(1000, 50)
	m.AddFine(1001, 0)

	records := m.FineRecords()

	assert.Equal(t, []FineRecord{
		{ItemID: 1000, Amount: 50},
		{ItemID: 1002, Amount: 20},
	}, records)
}

func TestFineRecordsEmptyMeansNoFines(t *testing.T) {
	m := NewFineManager()
	assert.Empty(t, m.FineRecords())
}

func TestStatsMostBorrowed(t *testing.T) {
	testCases := []struct {
		name          string
		counts        []int
		expectedTitle string
		expectedCount int
	}{
		{"clear winner", []int{0, 3, 1}, "item-1", 3},
		{"all zero picks first", []int{0, 0, 0}, "item-0", 0},
		{"tie picks first encountered", []int{2, 2, 1}, "item-0", 2},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFineManager()
			var items []*Item
			for i, c := range tt.counts {
				items = append(items, &Item{
					ID:          1000 + i,
					Title:       fmt.Sprintf("item-%d", i),
					Available:   true,
					BorrowCount: c,
				})
			}

			stats := m.Stats(items)
			assert.Equal(t, tt.expectedTitle, stats.MostBorrowed)
			assert.Equal(t, tt.expectedCount, stats.MostBorrowedCount)
		})
	}
}

func TestStatsEmptyCollection(t *testing.T) {
	m := NewFineManager()
	m.AddFine(1000, 40)
	m.AddPurchase(100)

	stats := m.Stats(nil)

	assert.Empty(t, stats.MostBorrowed)
	assert.Equal(t, 0, stats.MostBorrowedCount)
	assert.Equal(t, 40, stats.TotalFines)
	assert.Equal(t, 100, stats.TotalPurchases)
}

func TestStatsIndependentReductions(t *testing.T) {
	m := NewFineManager()
	m.AddFine(1000, 50)
	m.AddFine(1001, 30)
	m.AddPurchase(120)
	m.AddPurchase(80)

	stats := m.Stats([]*Item{{ID: 1000, Title: "only", BorrowCount: 2}})

	assert.Equal(t, 80, stats.TotalFines)
	assert.Equal(t, 200, stats.TotalPurchases)
	assert.Equal(t, "only", stats.MostBorrowed)
}
