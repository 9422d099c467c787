// Command replay steps through a recorded session turn by turn, rendering
// each decoded board as a grid. Left/right move between turns, q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robowars/botclient/protocol"
	"github.com/robowars/botclient/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	friendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	enemyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// The grid render caps out here; bigger boards fall back to the bot list.
const maxGridSize = 40

type model struct {
	run   store.Run
	turns []store.Turn
	// games[i] is the decoded form of turns[i], or nil when the recorded
	// line does not decode (possible for runs played with -skip-bad-lines).
	games []*protocol.Game
	idx   int
}

func newModel(run store.Run, turns []store.Turn) model {
	games := make([]*protocol.Game, len(turns))
	for i, turn := range turns {
		if game, err := protocol.ParseGame(turn.RawLine); err == nil {
			games[i] = game
		}
	}
	return model{run: run, turns: turns, games: games}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			if m.idx < len(m.turns)-1 {
				m.idx++
			}
		case "g", "home":
			m.idx = 0
		case "G", "end":
			m.idx = len(m.turns) - 1
		}
	}
	return m, nil
}

func (m model) View() string {
	if len(m.turns) == 0 {
		return "run has no recorded turns\n\n" + helpStyle.Render("q to quit") + "\n"
	}

	turn := m.turns[m.idx]
	game := m.games[m.idx]

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf(
		"Run %d [%s]  exchange %d/%d", m.run.ID, m.run.Strategy, m.idx+1, len(m.turns))))
	sb.WriteString("\n")

	if game == nil {
		sb.WriteString(badStyle.Render("line did not decode"))
		sb.WriteString("\n\nraw: " + turn.RawLine + "\n")
	} else {
		sb.WriteString(fmt.Sprintf("turn %d of %d, player %d, user data %q\n\n",
			game.Turn, game.TotalTurns, game.PlayerNum, game.UserData))
		sb.WriteString(renderBoard(game.Board))
		sb.WriteString("\n")
		for _, bot := range game.Board {
			glyph := friendStyle.Render("F")
			if bot.Team == protocol.Enemy {
				glyph = enemyStyle.Render("E")
			}
			sb.WriteString(fmt.Sprintf("  %s %-9s health %3d", glyph, bot.Position, bot.Health))
			if bot.Action != nil {
				sb.WriteString("  -> " + bot.Action.String())
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\nresponse: " + turn.Response + "\n")
	}

	sb.WriteString("\n" + helpStyle.Render("left/right step, g/G first/last, q quit") + "\n")
	return sb.String()
}

// renderBoard draws the arena with the origin at bottom-left, so Up on the
// wire is up on screen.
func renderBoard(board protocol.Board) string {
	maxX, maxY := 0, 0
	for _, bot := range board {
		if bot.Position.X > maxX {
			maxX = bot.Position.X
		}
		if bot.Position.Y > maxY {
			maxY = bot.Position.Y
		}
	}
	if maxX >= maxGridSize || maxY >= maxGridSize {
		return helpStyle.Render("board too large to draw") + "\n"
	}

	grid := make([][]string, maxY+1)
	for y := range grid {
		grid[y] = make([]string, maxX+1)
		for x := range grid[y] {
			grid[y][x] = "."
		}
	}
	for _, bot := range board {
		glyph := friendStyle.Render("F")
		if bot.Team == protocol.Enemy {
			glyph = enemyStyle.Render("E")
		}
		grid[bot.Position.Y][bot.Position.X] = glyph
	}

	var sb strings.Builder
	for y := maxY; y >= 0; y-- {
		sb.WriteString("  ")
		sb.WriteString(strings.Join(grid[y], " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func main() {
	dbPath := flag.String("db", "", "Session sqlite database to replay")
	runID := flag.Int64("run", 0, "Run to replay (0 = latest)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatalf("-db is required")
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
	if len(runs) == 0 {
		log.Fatalf("No runs recorded in %s", *dbPath)
	}

	run := runs[len(runs)-1]
	if *runID != 0 {
		found := false
		for _, r := range runs {
			if r.ID == *runID {
				run, found = r, true
				break
			}
		}
		if !found {
			log.Fatalf("Run %d not found (have %d runs)", *runID, len(runs))
		}
	}

	turns, err := db.RunTurns(run.ID)
	if err != nil {
		log.Fatalf("Failed to read run %d: %v", run.ID, err)
	}

	p := tea.NewProgram(newModel(run, turns), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
