// Package matchup evaluates batches of damage requests concurrently.
// It is the entry point for simulation and AI-training harnesses that need
// many independent CalcDamage results at once.
package matchup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gen1calc/internal/config"
	"github.com/udisondev/gen1calc/internal/game/combat"
	"github.com/udisondev/gen1calc/internal/model"
)

// ErrNoDamagingMove is returned by BestMove when every candidate deals 0 damage.
var ErrNoDamagingMove = errors.New("no move deals damage")

// Request is a single damage evaluation.
type Request struct {
	Attacker *model.Combatant
	Defender *model.Combatant
	Move     *model.Move
	Critical bool
}

// Result holds the damage for a Request.
// Damage uses the evaluator's roll; Min and Max bound every possible roll.
type Result struct {
	Request
	Damage uint32
	Min    uint32
	Max    uint32
}

// Evaluator runs damage requests on a bounded worker pool.
type Evaluator struct {
	roll    combat.Roll
	rng     combat.Rand
	workers int
}

// NewEvaluator creates an Evaluator from calculator config.
func NewEvaluator(cfg config.Calculator) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calculator config: %w", err)
	}
	roll, err := combat.ParseRoll(cfg.Roll)
	if err != nil {
		return nil, fmt.Errorf("invalid calculator config: %w", err)
	}

	rng := combat.DefaultRand
	if cfg.Seed != nil {
		rng = combat.NewSeededRand(*cfg.Seed)
	}

	return &Evaluator{roll: roll, rng: rng, workers: cfg.Workers}, nil
}

// Roll returns the roll variant used for Result.Damage.
func (e *Evaluator) Roll() combat.Roll {
	return e.roll
}

// Evaluate computes every request and returns results in request order.
// A contract violation in any request cancels the batch and is returned as an
// error wrapping *combat.ContractViolation.
//
// With a seeded source and RollRandom, results are reproducible only with a
// single worker: draws are shared in scheduling order.
func (e *Evaluator) Evaluate(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	slog.Debug("matchup batch started", "requests", len(reqs), "workers", e.workers, "roll", e.roll)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.evaluate(req)
			if err != nil {
				return fmt.Errorf("request %d (%s, %s): %w", i, nameOf(req.Attacker), moveName(req.Move), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("matchup batch finished", "requests", len(reqs))
	return results, nil
}

// evaluate converts a contract-violation panic into an error.
func (e *Evaluator) evaluate(req Request) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			cv, ok := r.(*combat.ContractViolation)
			if !ok {
				panic(r)
			}
			slog.Error("damage request rejected", "attacker", nameOf(req.Attacker), "move", moveName(req.Move), "err", cv)
			err = cv
		}
	}()

	res.Request = req
	res.Damage = combat.CalcDamageRand(req.Attacker, req.Defender, req.Move, req.Critical, e.roll, e.rng)
	res.Min, res.Max = combat.CalcDamageRange(req.Attacker, req.Defender, req.Move, req.Critical)
	return res, nil
}

// BestMove returns the non-critical result with the highest Damage among moves.
// Ties keep the earlier move.
func (e *Evaluator) BestMove(ctx context.Context, attacker, defender *model.Combatant, moves []*model.Move) (Result, error) {
	reqs := make([]Request, len(moves))
	for i, m := range moves {
		reqs[i] = Request{Attacker: attacker, Defender: defender, Move: m}
	}

	results, err := e.Evaluate(ctx, reqs)
	if err != nil {
		return Result{}, err
	}

	best := -1
	for i, r := range results {
		if r.Damage == 0 {
			continue
		}
		if best < 0 || r.Damage > results[best].Damage {
			best = i
		}
	}
	if best < 0 {
		return Result{}, fmt.Errorf("%s vs %s: %w", nameOf(attacker), nameOf(defender), ErrNoDamagingMove)
	}
	return results[best], nil
}

func nameOf(c *model.Combatant) string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

func moveName(m *model.Move) string {
	if m == nil {
		return "<nil>"
	}
	return m.Name
}
