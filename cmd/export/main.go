// Command export converts a recorded session database into parquet archive
// shards, re-decoding each stored engine line through the protocol package.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/robowars/botclient/protocol"
	"github.com/robowars/botclient/store"
)

func main() {
	dbPath := flag.String("db", "", "Session sqlite database to export")
	outDir := flag.String("out-dir", "", "Output directory for parquet shards")
	runID := flag.Int64("run", 0, "Export only this run (0 = all runs)")
	flag.Parse()

	if *dbPath == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "-db and -out-dir are required")
		os.Exit(2)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open session db: %v", err)
	}
	defer db.Close()

	runs, err := db.Runs()
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}
	if *runID != 0 {
		runs = filterRun(runs, *runID)
		if len(runs) == 0 {
			log.Fatalf("Run %d not found", *runID)
		}
	}

	writer, err := store.NewBatchWriter(*outDir)
	if err != nil {
		log.Fatalf("Failed to create batch writer: %v", err)
	}

	var exported, skipped int
	for _, run := range runs {
		turns, err := db.RunTurns(run.ID)
		if err != nil {
			log.Fatalf("Failed to read run %d: %v", run.ID, err)
		}

		rows := make([]store.TurnRow, 0, len(turns))
		for _, turn := range turns {
			game, err := protocol.ParseGame(turn.RawLine)
			if err != nil {
				// Garbage lines can be on record if the run used
				// -skip-bad-lines; they carry no decodable turn.
				log.Printf("Run %d seq %d: skipping undecodable line: %v", run.ID, turn.Seq, err)
				skipped++
				continue
			}
			rows = append(rows, store.RowFromGame(run.ID, turn.Seq, game, turn.RawLine, turn.Response))
		}

		if err := writer.WriteRows(rows); err != nil {
			log.Fatalf("Failed to write rows for run %d: %v", run.ID, err)
		}
		exported += len(rows)
		log.Printf("Run %d [%s]: %d turns", run.ID, run.Strategy, len(rows))
	}

	outPath, n, err := writer.Finalize()
	if err != nil {
		log.Fatalf("Failed to finalize shard: %v", err)
	}
	if n == 0 {
		log.Printf("Nothing to export (skipped %d lines)", skipped)
		return
	}
	log.Printf("Exported %d turns (%d skipped) to %s", exported, skipped, outPath)
}

func filterRun(runs []store.Run, id int64) []store.Run {
	for _, r := range runs {
		if r.ID == id {
			return []store.Run{r}
		}
	}
	return nil
}
