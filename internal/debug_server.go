package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key       string
	Namespace string
	Room      string
	Timestamp string
	Detail    string
}

type StatsProvider func() map[string]any

// StartDebugServer exposes a read-only HTML view over the badger keyspace
// (timer snapshots and session rows) plus live orchestrator stats. Meant
// for local inspection only; it binds whatever port the config says and
// has no authentication.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "timer:"
		}

		data := struct {
			Prefix string
			Items  []InspectRow
			Stats  map[string]any
		}{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}

		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

func mapRow(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:       key,
		Namespace: parts[0],
		Timestamp: "--:--:--",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
	if len(parts) >= 2 {
		row.Room = parts[1]
	}
	if row.Namespace == "sess" && len(parts) >= 3 {
		if tsMilli, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.UnixMilli(tsMilli).Format("15:04:05")
		}
	}

	// Records are JSON; a compacted echo is the most useful detail.
	var pretty map[string]any
	if err := json.Unmarshal(val, &pretty); err == nil {
		if compact, err := json.Marshal(pretty); err == nil {
			row.Detail = string(compact)
		}
	}
	return row
}
