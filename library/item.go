package library

import "fmt"

// ItemKind tags the variant payload carried by an Item.
type ItemKind int

const (
	KindBook ItemKind = iota
	KindAudioBook
	KindEMagazine
)

func (k ItemKind) String() string {
	switch k {
	case KindBook:
		return "Book"
	case KindAudioBook:
		return "AudioBook"
	case KindEMagazine:
		return "EMagazine"
	default:
		return "Unknown"
	}
}

// Item is one catalog entry. All three kinds share the same lifecycle and
// differ only in the variant payload and an optional capability.
//
// Invariant: Available == true implies RemainingDays == 0. A negative
// RemainingDays while checked out is the overdue signal.
type Item struct {
	ID            int      `json:"id"`
	Kind          ItemKind `json:"kind"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Available     bool     `json:"available"`
	RemainingDays int      `json:"remaining_days"`
	BorrowCount   int      `json:"borrow_count"`

	// Variant payload, meaningful per Kind.
	Pages int     `json:"pages,omitempty"` // KindBook
	Hours float64 `json:"hours,omitempty"` // KindAudioBook
	Issue int     `json:"issue,omitempty"` // KindEMagazine
}

// BorrowStatus distinguishes the two normal outcomes of a borrow attempt.
type BorrowStatus int

const (
	BorrowOK BorrowStatus = iota
	BorrowUnavailable
)

// BorrowReceipt reports what a borrow attempt did.
type BorrowReceipt struct {
	Status     BorrowStatus
	Days       int
	FinePerDay int
	FineTotal  int
}

type ReturnStatus int

const (
	ReturnOK ReturnStatus = iota
	ReturnNotBorrowed
)

// ReturnReceipt reports what a return attempt did. OverdueFee is zero
// unless the loan had gone overdue.
type ReturnReceipt struct {
	Status     ReturnStatus
	OverdueFee int
}

type BuyStatus int

const (
	BuyOK BuyStatus = iota
	BuyUnavailable
)

// BuyReceipt reports what a purchase attempt did.
type BuyReceipt struct {
	Status BuyStatus
	Price  int
}

// Borrow starts a loan of days days, charging the projected fine up front.
// An item that is not on the shelf is a reported outcome, not an error:
// nothing changes and the receipt says so.
func (it *Item) Borrow(days int, policy FinePolicy, fines *FineManager) BorrowReceipt {
	if !it.Available {
		return BorrowReceipt{Status: BorrowUnavailable}
	}
	it.Available = false
	it.RemainingDays = days
	it.BorrowCount++

	total := policy.Calculate(days)
	fines.AddFine(it.ID, total)

	return BorrowReceipt{
		Status:     BorrowOK,
		Days:       days,
		FinePerDay: policy.Calculate(1),
		FineTotal:  total,
	}
}

// Return puts the item back on the shelf. An overdue loan posts the flat
// overdueFee on top of whatever was charged at borrow time. Returning an
// item that is already available is a no-op.
func (it *Item) Return(overdueFee int, fines *FineManager) ReturnReceipt {
	if it.Available {
		return ReturnReceipt{Status: ReturnNotBorrowed}
	}
	receipt := ReturnReceipt{Status: ReturnOK}
	if it.RemainingDays < 0 {
		fines.AddFine(it.ID, overdueFee)
		receipt.OverdueFee = overdueFee
	}
	it.Available = true
	it.RemainingDays = 0
	return receipt
}

// MarkSold takes the item out of circulation for good, recording the price
// against the purchase total. Fines and the borrow count are untouched.
// A sold item reuses the availability flag, so it renders like a borrowed
// one with no return path.
func (it *Item) MarkSold(price int, fines *FineManager) BuyReceipt {
	if !it.Available {
		return BuyReceipt{Status: BuyUnavailable}
	}
	it.Available = false
	fines.AddPurchase(price)
	return BuyReceipt{Status: BuyOK, Price: price}
}

// NextDay advances the loan clock by one simulated day. The counter has no
// floor; going negative is the sole mechanism that produces overdue state.
func (it *Item) NextDay() {
	if !it.Available {
		it.RemainingDays--
	}
}

// Describe renders the one-line status summary shown in listings.
func (it *Item) Describe() string {
	status := "Available"
	if !it.Available {
		if it.RemainingDays >= 0 {
			status = fmt.Sprintf("Borrowed (%d days left)", it.RemainingDays)
		} else {
			status = "Overdue!"
		}
	}
	s := fmt.Sprintf("[%s] %q by %s | ID=%d | Status: %s", it.Kind, it.Title, it.Author, it.ID, status)
	switch it.Kind {
	case KindBook:
		s += fmt.Sprintf(" | %dp", it.Pages)
	case KindAudioBook:
		s += fmt.Sprintf(" | %.1fhrs", it.Hours)
	case KindEMagazine:
		s += fmt.Sprintf(" | Issue %d", it.Issue)
	}
	return s
}

// CanPlaySample reports whether the item carries a playable audio sample.
func (it *Item) CanPlaySample() bool { return it.Kind == KindAudioBook }

// CanArchive reports whether the item supports archiving an issue.
func (it *Item) CanArchive() bool { return it.Kind == KindEMagazine }

// PlaySample returns the display line for playing the audio sample. The
// caller is expected to check CanPlaySample first.
func (it *Item) PlaySample() string {
	return fmt.Sprintf("Playing sample: %s", it.Title)
}

// Archive returns the display line for archiving the current issue. The
// caller is expected to check CanArchive first.
func (it *Item) Archive() string {
	return fmt.Sprintf("Archiving Issue #%d of %s", it.Issue, it.Title)
}
