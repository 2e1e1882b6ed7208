package main

import (
	"fmt"
	"os"

	"librarium/library"
)

// Scripted walkthrough of one session: borrow, let the loan go overdue,
// return, buy, then print every report the manager offers.
func main() {
	mgr, err := library.NewLibraryManager(library.SimpleFine{Rate: 10}, library.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
		os.Exit(1)
	}
	defer mgr.Close()

	mgr.SeedDefaultCatalog()

	fmt.Println("Catalog:")
	for _, it := range mgr.Items() {
		fmt.Println("  " + it.Describe())
	}

	book := mgr.Items()[0]
	receipt, err := mgr.Borrow(book.ID, 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error borrowing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nBorrowed %q for %d days, fine posted Rs.%d\n", book.Title, receipt.Days, receipt.FineTotal)

	// Seven day ticks push a five day loan two days overdue.
	for i := 0; i < 7; i++ {
		if err := mgr.NextDay(); err != nil {
			fmt.Fprintf(os.Stderr, "Error advancing day: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("Seven days pass...")
	fmt.Println("  " + book.Describe())

	ret, err := mgr.Return(book.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error returning: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Returned %q, overdue fee Rs.%d\n", book.Title, ret.OverdueFee)

	magazine := mgr.Items()[2]
	if _, err := mgr.Buy(magazine.ID, 120); err != nil {
		fmt.Fprintf(os.Stderr, "Error buying: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bought %q for Rs.120\n", magazine.Title)

	fmt.Println("\nFine records:")
	for _, r := range mgr.FineRecords() {
		fmt.Printf("  Item %d -> Rs.%d\n", r.ItemID, r.Amount)
	}

	stats := mgr.Stats()
	fmt.Printf("\nMost borrowed: %q (%d times)\n", stats.MostBorrowed, stats.MostBorrowedCount)
	fmt.Printf("Total fines: Rs.%d | Total purchases: Rs.%d\n", stats.TotalFines, stats.TotalPurchases)

	counts, err := mgr.ActivityCounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nLedger activity: %d borrows, %d returns, %d purchases, %d fines, %d day ticks\n",
		counts[library.EventBorrow], counts[library.EventReturn],
		counts[library.EventPurchase], counts[library.EventFine], counts[library.EventDay])

	out, err := mgr.ExportJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nSession report:")
	fmt.Println(string(out))
}
