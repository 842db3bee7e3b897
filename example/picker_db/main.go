// Example: keep a schedule in SQLite across runs.
// The first run seeds the default expression; every later run moves the
// stored schedule one hour forward.

package main

import (
	"context"
	"fmt"
	"github.com/osmike/cronpick"
	"github.com/osmike/cronpick/internal/store"
	"log"
)

const dbName = "cron.db"

func main() {
	ctx := context.Background()

	db, err := store.OpenSQLite(ctx, dbName)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	host, err := store.NewSQLite(db, "nightly_backup", cronpick.Standard)
	if err != nil {
		log.Fatal(err)
	}

	p, err := cronpick.NewPicker(host, cronpick.NewStandard())
	if err != nil {
		log.Fatalf("Failed to create picker: %v", err)
	}
	defer p.Destroy()

	fmt.Printf("[cronpick] Loaded %q\n", p.Expression())
	if err := p.SetHours((p.State().Hours + 1) % 24); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[cronpick] Stored %q\n", p.Expression())

	entries, err := store.ListSQLite(ctx, db)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		fmt.Printf("  %-16s %-9s %q\n", e.Key, e.Dialect, e.Expression)
	}
}
