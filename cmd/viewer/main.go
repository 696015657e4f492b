// Command viewer prints the persisted session history of a room while the
// main process keeps running, by opening BadgerDB read-only.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"focus-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	Room           string `envconfig:"VIEWER_ROOM" required:"true"`
	Limit          int    `envconfig:"VIEWER_LIMIT" default:"50"`
	Colours        bool   `envconfig:"VIEWER_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// BypassLockGuard allows opening while the daemon holds the lock.
	opts := badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if cfg.Colours {
		color.Bold.Printf("Sessions for room %s\n\n", cfg.Room)
	} else {
		fmt.Printf("Sessions for room %s\n\n", cfg.Room)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Session", "Card", "Mode", "Outcome", "Planned", "Actual", "Started", "Ended", "Note"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	prefix := []byte(fmt.Sprintf("sess:%s:", cfg.Room))
	err = db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if count == cfg.Limit {
				break
			}
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var session repositories.DiskSession
				if err := json.Unmarshal(v, &session); err != nil {
					// Log the bad row and keep scanning instead of aborting.
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append([]string{
					session.ID.String()[:8],
					session.CardID,
					session.Mode,
					session.Outcome,
					strconv.Itoa(session.PlannedSeconds),
					strconv.Itoa(session.ActualSeconds),
					session.StartedAt.Local().Format(time.TimeOnly),
					formatEnded(session.EndedAt),
					session.Note,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	table.Render()
	fmt.Printf("\n%d session(s)\n", count)
}

func formatEnded(t time.Time) string {
	if t.IsZero() {
		return "in flight"
	}
	return t.Local().Format(time.TimeOnly)
}
