// Command simulate plays full games against the engine with simple scripted
// players and prints aggregate results. It is useful for sanity-checking rule
// sets: win distribution, game length, and how often games hit the turn cap.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/monopoly/game/engine"
	"github.com/wricardo/mcp-training/monopoly/game/rules"
)

func main() {
	cmd := &cli.Command{
		Name:  "simulate",
		Usage: "Run scripted Monopoly games and report win rates and game length",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "games",
				Value: 100,
				Usage: "number of games to play",
			},
			&cli.IntFlag{
				Name:  "players",
				Value: 4,
				Usage: "number of players per game",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 0,
				Usage: "base random seed (0 picks one from the clock)",
			},
			&cli.IntFlag{
				Name:  "max-turns",
				Value: 2000,
				Usage: "abort a game after this many turns",
			},
			&cli.StringFlag{
				Name:  "rules",
				Value: "",
				Usage: "rule set name to load (empty uses the built-in defaults)",
			},
			&cli.StringFlag{
				Name:  "rules-dir",
				Value: "configs",
				Usage: "directory containing rule set files",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print the outcome of every game",
			},
		},
		Action: runSimulation,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSimulation(ctx context.Context, cmd *cli.Command) error {
	games := cmd.Int("games")
	playerCount := cmd.Int("players")
	seed := cmd.Int64("seed")
	maxTurns := cmd.Int("max-turns")
	verbose := cmd.Bool("verbose")

	if games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", games)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ruleSet, err := loadRuleSet(cmd.String("rules"), cmd.String("rules-dir"))
	if err != nil {
		return err
	}

	names := make([]string, playerCount)
	for i := range names {
		names[i] = fmt.Sprintf("player%d", i+1)
	}

	fmt.Printf("Simulating %d games, %d players, rules %q, base seed %d\n\n",
		games, playerCount, ruleSet.Name, seed)

	wins := make(map[string]int)
	var totalTurns, capped, failed int

	for i := 0; i < games; i++ {
		result, err := playGame(names, ruleSet, seed+int64(i), maxTurns)
		if err != nil {
			failed++
			if verbose {
				fmt.Printf("game %d: error: %v\n", i+1, err)
			}
			continue
		}

		totalTurns += result.turns
		if result.winner == "" {
			capped++
			if verbose {
				fmt.Printf("game %d: no winner after %d turns\n", i+1, result.turns)
			}
			continue
		}
		wins[result.winner]++
		if verbose {
			fmt.Printf("game %d: %s won in %d turns\n", i+1, result.winner, result.turns)
		}
	}

	printReport(names, wins, games, totalTurns, capped, failed)
	return nil
}

func loadRuleSet(name, dir string) (*engine.Rules, error) {
	if name == "" {
		return engine.DefaultRules(), nil
	}
	manager, err := rules.NewManager(dir)
	if err != nil {
		return nil, fmt.Errorf("open rules directory: %w", err)
	}
	ruleSet, err := manager.LoadRules(name)
	if err != nil {
		return nil, fmt.Errorf("load rules %q: %w", name, err)
	}
	return ruleSet, nil
}

type gameResult struct {
	winner string
	turns  int
}

// playGame drives one full game with a greedy policy: buy whatever is
// affordable above a cash reserve, bid half price in auctions half the time,
// escape jail with cards first, and build once cash is comfortable.
func playGame(names []string, ruleSet *engine.Rules, seed int64, maxTurns int) (*gameResult, error) {
	eng, err := engine.NewEngineWithSeed(names, ruleSet, seed)
	if err != nil {
		return nil, err
	}
	policy := rand.New(rand.NewSource(seed))

	const cashReserve = 150

	for {
		state := eng.GetState()
		if state.GameOver {
			return &gameResult{winner: state.Winner, turns: state.TurnCount}, nil
		}
		if state.TurnCount >= maxTurns {
			return &gameResult{turns: state.TurnCount}, nil
		}

		current := state.Players[state.Current]

		switch state.Phase {
		case engine.PhaseAwaitingPurchase:
			price := engine.SpaceAt(state.PendingPurchase).Price
			if current.Cash >= price+cashReserve {
				if _, err := eng.Buy(current.Name); err != nil {
					return nil, fmt.Errorf("buy at %d: %w", state.PendingPurchase, err)
				}
				continue
			}
			bids := auctionBids(state, current.Name, price, policy)
			if _, err := eng.Decline(current.Name, bids); err != nil {
				return nil, fmt.Errorf("decline at %d: %w", state.PendingPurchase, err)
			}

		case engine.PhaseAwaitingRoll:
			if current.InJail {
				if err := tryJailEscape(eng, current, ruleSet); err != nil {
					return nil, err
				}
			}
			if _, err := eng.Roll(current.Name); err != nil {
				return nil, fmt.Errorf("roll for %s: %w", current.Name, err)
			}
			developHoldings(eng, current.Name, cashReserve)

		default:
			return nil, fmt.Errorf("unexpected phase %q", state.Phase)
		}
	}
}

// tryJailEscape spends a jail card or the fine when affordable. The player
// still rolls afterwards, released or not.
func tryJailEscape(eng *engine.GameEngine, p *engine.Player, ruleSet *engine.Rules) error {
	if p.JailCards > 0 {
		if _, err := eng.UseJailCard(p.Name); err != nil {
			return fmt.Errorf("use jail card for %s: %w", p.Name, err)
		}
		return nil
	}
	if p.Cash >= ruleSet.JailFine*4 {
		if _, err := eng.PayJailFine(p.Name); err != nil {
			return fmt.Errorf("pay jail fine for %s: %w", p.Name, err)
		}
	}
	// Too poor to pay: roll for doubles instead.
	return nil
}

// auctionBids collects bids from the other solvent players. Each bids half
// the list price about half the time, which keeps auctions occasionally
// contested without draining everyone.
func auctionBids(state *engine.GameState, decliner string, price int, policy *rand.Rand) map[string]int {
	bids := make(map[string]int)
	half := price / 2
	if half < 1 {
		half = 1
	}
	for _, p := range state.Players {
		if p.Bankrupt || p.Name == decliner || p.Cash < half {
			continue
		}
		if policy.Intn(2) == 0 {
			bids[p.Name] = half
		}
	}
	return bids
}

// developHoldings greedily builds on owned deeds while cash stays above the
// reserve. Build rejections (no full group, pool empty, even-build rule) are
// expected and skipped.
func developHoldings(eng *engine.GameEngine, player string, cashReserve int) {
	state := eng.GetState()
	var current *engine.Player
	for _, p := range state.Players {
		if p.Name == player {
			current = p
			break
		}
	}
	if current == nil || current.Bankrupt {
		return
	}

	positions := append([]int(nil), current.Properties...)
	sort.Ints(positions)
	for _, pos := range positions {
		space := engine.SpaceAt(pos)
		if space.HouseCost == 0 || current.Cash-space.HouseCost < cashReserve {
			continue
		}
		if _, err := eng.Build(player, pos); err != nil {
			continue
		}
	}
}

func printReport(names []string, wins map[string]int, games, totalTurns, capped, failed int) {
	finished := games - capped - failed
	fmt.Printf("\n=== Results over %d games ===\n", games)
	for _, name := range names {
		count := wins[name]
		pct := 0.0
		if finished > 0 {
			pct = float64(count) / float64(finished) * 100
		}
		fmt.Printf("  %-10s %4d wins (%5.1f%%)\n", name, count, pct)
	}
	if capped > 0 {
		fmt.Printf("  %d games hit the turn cap without a winner\n", capped)
	}
	if failed > 0 {
		fmt.Printf("  %d games aborted with errors\n", failed)
	}
	if games > 0 {
		fmt.Printf("  average game length: %.1f turns\n", float64(totalTurns)/float64(games))
	}
}
