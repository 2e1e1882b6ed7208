package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"librarium/library"
)

func runSession() error {
	mgr, err := library.NewLibraryManager(
		library.SimpleFine{Rate: ratePerDay},
		library.Config{BaseID: baseID, OverdueFee: overdueFee},
	)
	if err != nil {
		return err
	}
	defer mgr.Close()

	mgr.SeedDefaultCatalog()

	// Piped input (tests, scripts) gets no banner or menu noise.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	if interactive {
		fmt.Println("Welcome to Librarium!")
	}

	for {
		if interactive {
			printMenu()
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		choice := strings.TrimSpace(strings.ToLower(scanner.Text()))

		switch choice {
		case "1", "list":
			handleList(mgr)
		case "2", "search":
			handleSearch(scanner, mgr)
		case "3", "return":
			handleReturn(scanner, mgr)
		case "4", "reports":
			handleReports(mgr)
		case "5", "next day":
			handleNextDay(mgr)
		case "6", "borrowed":
			handleBorrowed(mgr)
		case "7", "history":
			handleHistory(mgr)
		case "8", "export":
			handleExport(mgr)
		case "9", "exit", "quit":
			fmt.Println("\n" + farewell() + "\n")
			return nil
		case "":
			continue
		default:
			fmt.Println("Unknown choice. Pick a number from the menu.")
		}
	}
	return nil
}

func printMenu() {
	fmt.Println("\n===== MENU =====")
	fmt.Println("1. Show all items")
	fmt.Println("2. Search items")
	fmt.Println("3. Return item")
	fmt.Println("4. Show reports")
	fmt.Println("5. Next day (simulate)")
	fmt.Println("6. Show borrowed items")
	fmt.Println("7. Session history")
	fmt.Println("8. Export report (JSON)")
	fmt.Println("9. Exit")
}

func handleList(mgr *library.LibraryManager) {
	for _, it := range mgr.Items() {
		fmt.Println(it.Describe())
	}
}

func handleSearch(sc *bufio.Scanner, mgr *library.LibraryManager) {
	fmt.Print("Keyword: ")
	if !sc.Scan() {
		return
	}
	keyword := strings.TrimSpace(sc.Text())

	matches := mgr.Search(keyword)
	if len(matches) == 0 {
		fmt.Println("No matches found!")
		return
	}

	for _, it := range matches {
		fmt.Println(it.Describe())

		if !it.Available {
			fmt.Printf("%q not available now. Will be back soon!\n", it.Title)
			continue
		}

		fmt.Print("(1) Borrow (2) Buy (Enter to skip): ")
		if !sc.Scan() {
			return
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			handleBorrow(sc, mgr, it)
		case "2":
			handleBuy(sc, mgr, it)
		}

		offerCapability(sc, mgr, it)
	}
}

func handleBorrow(sc *bufio.Scanner, mgr *library.LibraryManager, it *library.Item) {
	days, ok := promptInt(sc, "Days: ")
	if !ok {
		return
	}

	receipt, err := mgr.Borrow(it.ID, days)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if receipt.Status == library.BorrowUnavailable {
		fmt.Printf("%q not available now. Will be back soon!\n", it.Title)
		return
	}

	fmt.Printf("%q borrowed for %d day(s). (ID=%d)\n", it.Title, receipt.Days, it.ID)
	fmt.Printf("Due in %d days | Fine/day = Rs.%d\n", receipt.Days, receipt.FinePerDay)
}

func handleBuy(sc *bufio.Scanner, mgr *library.LibraryManager, it *library.Item) {
	price, ok := promptInt(sc, "Price: ")
	if !ok {
		return
	}

	receipt, err := mgr.Buy(it.ID, price)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if receipt.Status == library.BuyUnavailable {
		fmt.Printf("%q not available now. Will be back soon!\n", it.Title)
		return
	}

	fmt.Printf("Bought %q (ID=%d)\n", it.Title, it.ID)
}

// offerCapability surfaces the item's extra action, if it has one.
func offerCapability(sc *bufio.Scanner, mgr *library.LibraryManager, it *library.Item) {
	switch {
	case it.CanPlaySample():
		fmt.Print("Play a sample? (y/N): ")
		if sc.Scan() && strings.EqualFold(strings.TrimSpace(sc.Text()), "y") {
			if line, err := mgr.PlaySample(it.ID); err == nil {
				fmt.Println(line)
			}
		}
	case it.CanArchive():
		fmt.Print("Archive this issue? (y/N): ")
		if sc.Scan() && strings.EqualFold(strings.TrimSpace(sc.Text()), "y") {
			if line, err := mgr.ArchiveIssue(it.ID); err == nil {
				fmt.Println(line)
			}
		}
	}
}

func handleReturn(sc *bufio.Scanner, mgr *library.LibraryManager) {
	id, ok := promptInt(sc, "ID to return: ")
	if !ok {
		return
	}

	receipt, err := mgr.Return(id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			fmt.Println("Invalid ID")
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}
	if receipt.Status == library.ReturnNotBorrowed {
		fmt.Println("That item is already on the shelf.")
		return
	}

	it, _ := mgr.Get(id)
	if receipt.OverdueFee > 0 {
		fmt.Printf("%q is overdue! Extra fine Rs.%d applied.\n", it.Title, receipt.OverdueFee)
	}
	fmt.Printf("Returned %q (ID=%d)\n", it.Title, it.ID)
}

func handleReports(mgr *library.LibraryManager) {
	fmt.Println("\nFine Records:")
	records := mgr.FineRecords()
	if len(records) == 0 {
		fmt.Println("No fines yet")
	} else {
		for _, r := range records {
			fmt.Printf("Item %d -> Rs.%d\n", r.ItemID, r.Amount)
		}
	}

	stats := mgr.Stats()
	fmt.Println("\n===== Library Stats =====")
	if len(mgr.Items()) > 0 {
		fmt.Printf("Most Borrowed: %q (%d times)\n", stats.MostBorrowed, stats.MostBorrowedCount)
	}
	fmt.Printf("Total Fines Collected: Rs.%d\n", stats.TotalFines)
	fmt.Printf("Total Purchases: Rs.%d\n", stats.TotalPurchases)
}

func handleNextDay(mgr *library.LibraryManager) {
	if err := mgr.NextDay(); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	fmt.Println("A new day has passed. Borrowed items updated.")
}

func handleBorrowed(mgr *library.LibraryManager) {
	fmt.Println("\n===== Borrowed Items =====")
	borrowed := mgr.Borrowed()
	if len(borrowed) == 0 {
		fmt.Println("No items are currently borrowed")
		return
	}
	for _, it := range borrowed {
		fmt.Println(it.Describe())
	}
}

func handleHistory(mgr *library.LibraryManager) {
	entries, err := mgr.History(20)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No activity recorded yet.")
		return
	}

	fmt.Printf("%-5s %-10s %-8s %-8s %-8s\n", "#", "Event", "Item", "Amount", "Days")
	fmt.Println(strings.Repeat("-", 45))
	for _, e := range entries {
		item := "-"
		if e.ItemID != 0 {
			item = strconv.Itoa(e.ItemID)
		}
		fmt.Printf("%-5d %-10s %-8s %-8d %-8d\n", e.ID, e.Kind, item, e.Amount, e.Days)
	}
}

func handleExport(mgr *library.LibraryManager) {
	out, err := mgr.ExportJSON()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func promptInt(sc *bufio.Scanner, label string) (int, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return 0, false
	}
	raw := strings.TrimSpace(sc.Text())
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Invalid number: %s\n", raw)
		return 0, false
	}
	return v, true
}

func farewell() string {
	exits := []string{
		"Have a great reading journey!",
		"See you next time!",
		"Keep turning the pages!",
		"Happy Listening!",
		"Stay updated with great reads!",
		"Knowledge is power. Keep exploring!",
	}
	return exits[rand.Intn(len(exits))]
}
