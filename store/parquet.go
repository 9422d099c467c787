package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/robowars/botclient/protocol"
)

// TurnRow is one decoded turn in the long-term archive: the decoded model
// plus the raw exchange it came from, one row per turn with nested per-bot
// data so board-wide fields are not duplicated across bots.
type TurnRow struct {
	RunID      int64  `parquet:"run_id"`
	Seq        int32  `parquet:"seq"`
	Turn       int32  `parquet:"turn"`
	TotalTurns int32  `parquet:"total_turns"`
	PlayerNum  int32  `parquet:"player_num"`
	UserData   string `parquet:"user_data"`

	Bots []BotRow `parquet:"bots"`

	RawLine  string `parquet:"raw_line"`
	Response string `parquet:"response"`
}

// BotRow is one bot of a turn, in board order.
type BotRow struct {
	Friendly bool  `parquet:"friendly"`
	X        int32 `parquet:"x"`
	Y        int32 `parquet:"y"`
	Health   int32 `parquet:"health"`

	// Action is the wire form of the action assigned to a friendly bot, or
	// "" when none was assigned (enemies never carry one).
	Action string `parquet:"action,dict,optional"`
}

// RowFromGame flattens a decoded game plus its emitted response into an
// archive row.
func RowFromGame(runID int64, seq int, g *protocol.Game, rawLine, response string) TurnRow {
	bots := make([]BotRow, 0, len(g.Board))
	for _, bot := range g.Board {
		row := BotRow{
			Friendly: bot.Team == protocol.Friendly,
			X:        int32(bot.Position.X),
			Y:        int32(bot.Position.Y),
			Health:   int32(bot.Health),
		}
		if bot.Action != nil {
			row.Action = bot.Action.String()
		}
		bots = append(bots, row)
	}
	return TurnRow{
		RunID:      runID,
		Seq:        int32(seq),
		Turn:       int32(g.Turn),
		TotalTurns: int32(g.TotalTurns),
		PlayerNum:  int32(g.PlayerNum),
		UserData:   g.UserData,
		Bots:       bots,
		RawLine:    rawLine,
		Response:   response,
	}
}

// WriteTurnsParquet writes rows to outPath via a temp file and an atomic
// rename, so readers never observe a partially-written shard.
func WriteTurnsParquet(outPath string, rows []TurnRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "turn_row_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// BatchWriter streams TurnRows into a single shard under outDir/tmp and
// moves it into outDir on Finalize. Long-running writers use this so the
// shard only becomes visible once complete.
type BatchWriter struct {
	outDir  string
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[TurnRow]

	bufferedRows int
}

// NewBatchWriter opens a shard named after the current time under outDir.
func NewBatchWriter(outDir string) (*BatchWriter, error) {
	if outDir == "" {
		return nil, fmt.Errorf("outDir is required")
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("turns_%d.parquet", time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[TurnRow](f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", "turn_row_v1")

	return &BatchWriter{
		outDir:  absOut,
		tmpPath: tmpPath,
		outPath: filepath.Join(absOut, name),
		file:    f,
		writer:  w,
	}, nil
}

func (b *BatchWriter) BufferedRows() int { return b.bufferedRows }

// WriteRows appends rows to the shard.
func (b *BatchWriter) WriteRows(rows []TurnRow) error {
	if b.writer == nil {
		return fmt.Errorf("batch writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := b.writer.Write(rows); err != nil {
		return err
	}
	b.bufferedRows += len(rows)
	return nil
}

// Finalize closes the shard and moves it into outDir. With zero rows
// written the tmp file is removed and outPath comes back empty.
func (b *BatchWriter) Finalize() (outPath string, rows int, err error) {
	if b.writer == nil && b.file == nil {
		return "", 0, nil
	}

	rows = b.bufferedRows
	outPath = b.outPath

	var closeErr error
	if b.writer != nil {
		closeErr = b.writer.Close()
		b.writer = nil
	}
	var fileErr error
	if b.file != nil {
		_ = b.file.Sync()
		fileErr = b.file.Close()
		b.file = nil
	}
	if closeErr != nil {
		return "", 0, fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		return "", 0, fmt.Errorf("close parquet file: %w", fileErr)
	}

	if rows == 0 {
		_ = os.Remove(b.tmpPath)
		return "", 0, nil
	}
	if err := os.Rename(b.tmpPath, b.outPath); err != nil {
		return "", 0, fmt.Errorf("rename parquet: %w", err)
	}
	return outPath, rows, nil
}
