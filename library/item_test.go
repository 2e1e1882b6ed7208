package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(id int) *Item {
	return &Item{
		ID:        id,
		Kind:      KindBook,
		Title:     "Harry Potter and the Sorcerer's Stone",
		Author:    "J.K. Rowling",
		Available: true,
		Pages:     309,
	}
}

func TestBorrowSetsLoanState(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)

	receipt := it.Borrow(5, SimpleFine{Rate: 10}, fines)

	assert.Equal(t, BorrowOK, receipt.Status)
	assert.Equal(t, 5, receipt.Days)
	assert.Equal(t, 10, receipt.FinePerDay)
	assert.Equal(t, 50, receipt.FineTotal)

	assert.False(t, it.Available)
	assert.Equal(t, 5, it.RemainingDays)
	assert.Equal(t, 1, it.BorrowCount)
	assert.Equal(t, 50, fines.Fine(1000))
}

func TestBorrowUnavailableChangesNothing(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)
	it.Borrow(5, SimpleFine{Rate: 10}, fines)

	receipt := it.Borrow(3, SimpleFine{Rate: 10}, fines)

	assert.Equal(t, BorrowUnavailable, receipt.Status)
	assert.False(t, it.Available)
	assert.Equal(t, 5, it.RemainingDays)
	assert.Equal(t, 1, it.BorrowCount)
	assert.Equal(t, 50, fines.Fine(1000))
}

func TestNextDayNeverClamps(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)
	it.Borrow(2, SimpleFine{Rate: 10}, fines)

	for i := 0; i < 3; i++ {
		it.NextDay()
	}
	assert.Equal(t, -1, it.RemainingDays)

	it.NextDay()
	assert.Equal(t, -2, it.RemainingDays)
}

func TestNextDayOnShelfIsNoop(t *testing.T) {
	it := newBook(1000)
	it.NextDay()
	assert.True(t, it.Available)
	assert.Equal(t, 0, it.RemainingDays)
}

func TestReturnOverdueAddsFlatFee(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)
	it.Borrow(5, SimpleFine{Rate: 10}, fines)
	for i := 0; i < 7; i++ {
		it.NextDay()
	}
	require.Equal(t, -2, it.RemainingDays)

	receipt := it.Return(30, fines)

	assert.Equal(t, ReturnOK, receipt.Status)
	assert.Equal(t, 30, receipt.OverdueFee)
	assert.Equal(t, 80, fines.Fine(1000))
	assert.True(t, it.Available)
	assert.Equal(t, 0, it.RemainingDays)
}

func TestReturnOnTimeAddsNothing(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)
	it.Borrow(5, SimpleFine{Rate: 10}, fines)
	it.NextDay()

	receipt := it.Return(30, fines)

	assert.Equal(t, ReturnOK, receipt.Status)
	assert.Equal(t, 0, receipt.OverdueFee)
	assert.Equal(t, 50, fines.Fine(1000))
	assert.True(t, it.Available)
	assert.Equal(t, 0, it.RemainingDays)
}

func TestReturnOnShelfIsNoop(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)

	receipt := it.Return(30, fines)

	assert.Equal(t, ReturnNotBorrowed, receipt.Status)
	assert.Empty(t, fines.FineRecords())
	assert.Equal(t, 0, fines.TotalPurchases())
}

func TestMarkSoldBypassesFines(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)

	receipt := it.MarkSold(250, fines)

	assert.Equal(t, BuyOK, receipt.Status)
	assert.False(t, it.Available)
	assert.Equal(t, 0, it.RemainingDays)
	assert.Equal(t, 0, it.BorrowCount)
	assert.Equal(t, 250, fines.TotalPurchases())
	assert.Empty(t, fines.FineRecords())
}

func TestMarkSoldUnavailableChangesNothing(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)
	it.Borrow(5, SimpleFine{Rate: 10}, fines)

	receipt := it.MarkSold(250, fines)

	assert.Equal(t, BuyUnavailable, receipt.Status)
	assert.Equal(t, 0, fines.TotalPurchases())
}

func TestDescribe(t *testing.T) {
	fines := NewFineManager()

	testCases := []struct {
		name     string
		setup    func() *Item
		expected string
	}{
		{
			name:     "available book",
			setup:    func() *Item { return newBook(1000) },
			expected: `[Book] "Harry Potter and the Sorcerer's Stone" by J.K. Rowling | ID=1000 | Status: Available | 309p`,
		},
		{
			name: "borrowed audiobook shows days left",
			setup: func() *Item {
				it := &Item{ID: 1001, Kind: KindAudioBook, Title: "Becoming", Author: "Michelle Obama", Available: true, Hours: 19.5}
				it.Borrow(3, SimpleFine{Rate: 10}, fines)
				return it
			},
			expected: `[AudioBook] "Becoming" by Michelle Obama | ID=1001 | Status: Borrowed (3 days left)`,
		},
		{
			name: "overdue magazine",
			setup: func() *Item {
				it := &Item{ID: 1002, Kind: KindEMagazine, Title: "National Geographic", Author: "Various", Available: true, Issue: 202}
				it.Borrow(1, SimpleFine{Rate: 10}, fines)
				it.NextDay()
				it.NextDay()
				return it
			},
			expected: `[EMagazine] "National Geographic" by Various | ID=1002 | Status: Overdue! | Issue 202`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			it := tt.setup()
			assert.Contains(t, it.Describe(), tt.expected)
		})
	}
}

func TestDescribeAvailableNeverShowsDays(t *testing.T) {
	fines := NewFineManager()
	it := newBook(1000)
	it.Borrow(5, SimpleFine{Rate: 10}, fines)
	it.Return(30, fines)

	assert.Contains(t, it.Describe(), "Status: Available")
	assert.NotContains(t, it.Describe(), "days left")
}

func TestCapabilities(t *testing.T) {
	book := &Item{Kind: KindBook}
	audio := &Item{Kind: KindAudioBook, Title: "Becoming"}
	magazine := &Item{Kind: KindEMagazine, Title: "National Geographic", Issue: 202}

	assert.False(t, book.CanPlaySample())
	assert.False(t, book.CanArchive())

	assert.True(t, audio.CanPlaySample())
	assert.False(t, audio.CanArchive())
	assert.Equal(t, "Playing sample: Becoming", audio.PlaySample())

	assert.False(t, magazine.CanPlaySample())
	assert.True(t, magazine.CanArchive())
	assert.Equal(t, "Archiving Issue #202 of National Geographic", magazine.Archive())
}
