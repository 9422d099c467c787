// Command bot is the arena client driver. It reads one engine line per turn
// from stdin, decodes it, lets the selected strategy assign actions to the
// friendly bots, and writes exactly one response line to stdout before
// reading the next line.
//
// stdout carries only protocol lines; all logging goes to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/robowars/botclient/logging"
	"github.com/robowars/botclient/protocol"
	"github.com/robowars/botclient/store"
	"github.com/robowars/botclient/strategy"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	strategyName := fs.String("strategy", "defend", fmt.Sprintf("Strategy to play, one of: %s", strings.Join(strategy.Names(), ", ")))
	recordPath := fs.String("record", "", "Record the session to this sqlite database")
	skipBad := fs.Bool("skip-bad-lines", false, "Log and skip undecodable lines instead of exiting")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := slog.New(logging.New(os.Stderr, parseLevel(*logLevel)))
	slog.SetDefault(logger)

	if err := run(logger, *strategyName, *recordPath, *skipBad); err != nil {
		logger.Error("fatal", "err", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger, strategyName, recordPath string, skipBad bool) error {
	strat, ok := strategy.ByName(strategyName)
	if !ok {
		return fmt.Errorf("unknown strategy %q (have: %s)", strategyName, strings.Join(strategy.Names(), ", "))
	}

	var db *store.DB
	var runID int64
	if recordPath != "" {
		var err error
		db, err = store.Open(recordPath)
		if err != nil {
			return fmt.Errorf("open record db: %w", err)
		}
		defer db.Close()
		runID, err = db.BeginRun(strategyName)
		if err != nil {
			return fmt.Errorf("begin run: %w", err)
		}
		logger.Info("recording session", "db", recordPath, "run", runID)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	// Boards can be long; the default 64K token limit is not enough for
	// crowded late-game arenas.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	seq := 0
	for scanner.Scan() {
		line := scanner.Text()
		seq++

		game, err := protocol.ParseGame(line)
		if err != nil {
			var derr *protocol.DecodeError
			if errors.As(err, &derr) {
				logger.Error("decode failed", "seq", seq, "field", string(derr.Kind), "token", derr.Token)
			} else {
				logger.Error("decode failed", "seq", seq, "err", err.Error())
			}
			if skipBad {
				continue
			}
			return fmt.Errorf("line %d: %w", seq, err)
		}

		strat.Act(game)
		response := game.Encode()

		fmt.Fprintln(out, response)
		// The engine waits on our response before sending the next turn.
		if err := out.Flush(); err != nil {
			return fmt.Errorf("write response: %w", err)
		}

		logger.Debug("turn played",
			"seq", seq,
			"turn", game.Turn,
			"of", game.TotalTurns,
			"bots", len(game.Board),
			"friendly", len(game.Board.Friendly()),
		)

		if db != nil {
			err := db.RecordTurn(store.Turn{
				RunID:      runID,
				Seq:        seq,
				Turn:       int64(game.Turn),
				TotalTurns: int64(game.TotalTurns),
				PlayerNum:  int(game.PlayerNum),
				RawLine:    line,
				Response:   response,
			})
			if err != nil {
				// Recording is best-effort; never stall the match over it.
				logger.Warn("record turn failed", "seq", seq, "err", err.Error())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	logger.Info("engine closed input", "turns", seq)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
