package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger()
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedgerSessionsAreIsolated(t *testing.T) {
	a := newTestLedger(t)
	b := newTestLedger(t)
	assert.NotEqual(t, a.Session(), b.Session())

	require.NoError(t, a.RecordDay())

	entries, err := b.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordBorrowWritesBorrowAndFine(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordBorrow(1000, 5, 50))

	entries, err := l.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, EventFine, entries[0].Kind)
	assert.Equal(t, 50, entries[0].Amount)
	assert.Equal(t, EventBorrow, entries[1].Kind)
	assert.Equal(t, 5, entries[1].Days)
	assert.Equal(t, 1000, entries[1].ItemID)
}

func TestRecordReturnOnTimeWritesSingleRow(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordReturn(1000, 0))

	entries, err := l.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, EventReturn, entries[0].Kind)
}

func TestRecordReturnOverdueWritesFeeRow(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordReturn(1000, 30))

	counts, err := l.CountByKind()
	require.NoError(t, err)
	assert.Equal(t, 1, counts[EventReturn])
	assert.Equal(t, 1, counts[EventFine])
}

func TestRecentLimit(t *testing.T) {
	l := newTestLedger(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, l.RecordDay())
	}

	entries, err := l.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Greater(t, entries[0].ID, entries[1].ID)
	assert.Greater(t, entries[1].ID, entries[2].ID)
}

func TestCountByKind(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordBorrow(1000, 5, 50))
	require.NoError(t, l.RecordPurchase(1002, 120))
	require.NoError(t, l.RecordDay())
	require.NoError(t, l.RecordDay())

	counts, err := l.CountByKind()
	require.NoError(t, err)

	assert.Equal(t, 1, counts[EventBorrow])
	assert.Equal(t, 1, counts[EventFine])
	assert.Equal(t, 1, counts[EventPurchase])
	assert.Equal(t, 2, counts[EventDay])
}
