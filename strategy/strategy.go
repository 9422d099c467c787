// Package strategy is the seam between a decoded board and the actions sent
// back to the engine. A Strategy mutates the friendly bots' Action fields in
// place; anything left nil encodes as Defend.
//
// Only trivial baselines live here. Real decision logic plugs in through
// Register without the driver knowing anything about it.
package strategy

import (
	"sort"

	"github.com/robowars/botclient/protocol"
)

// Strategy assigns this turn's actions to the friendly bots of g.
type Strategy interface {
	Act(g *protocol.Game)
}

// Func adapts a plain function to Strategy.
type Func func(*protocol.Game)

func (f Func) Act(g *protocol.Game) { f(g) }

// Defend assigns nothing and lets the codec default every friendly bot to
// Defend. It is the protocol's own fallback, useful as a baseline and for
// smoke-testing the loop.
var Defend Strategy = Func(func(*protocol.Game) {})

// Hold explicitly assigns Defend to every friendly bot. It encodes the same
// line as Defend, but the actions are marked as chosen rather than
// defaulted, which matters to anything inspecting the decoded model.
var Hold Strategy = Func(func(g *protocol.Game) {
	for i := range g.Board {
		if g.Board[i].Team != protocol.Friendly {
			continue
		}
		action := protocol.DefaultAction()
		g.Board[i].Action = &action
	}
})

var registry = map[string]Strategy{
	"defend": Defend,
	"hold":   Hold,
}

// Register makes a strategy selectable by name from the driver.
func Register(name string, s Strategy) {
	registry[name] = s
}

// ByName looks up a registered strategy.
func ByName(name string) (Strategy, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
