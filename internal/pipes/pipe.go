package pipes

import (
	"math/rand"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// BoundaryPolicy controls what happens when a pipe reaches a screen edge.
type BoundaryPolicy int

const (
	// PolicyWrap teleports the pipe to the opposite edge.
	PolicyWrap BoundaryPolicy = iota
	// PolicyBounce deflects the pipe 90° back into the screen.
	PolicyBounce
)

func (p BoundaryPolicy) String() string {
	if p == PolicyBounce {
		return "bounce"
	}
	return "wrap"
}

// ParsePolicy converts a policy name to a BoundaryPolicy.
// Returns false if the name is not recognized.
func ParsePolicy(name string) (BoundaryPolicy, bool) {
	switch name {
	case "wrap":
		return PolicyWrap, true
	case "bounce":
		return PolicyBounce, true
	default:
		return PolicyWrap, false
	}
}

// Pipe is a single moving, trail-drawing entity.
// Its position is always within [0,width) x [0,height).
type Pipe struct {
	X, Y  int
	Dir   Direction
	Color core.Color
}

// advance chooses the pipe's next direction and moves it one cell, applying
// the boundary policy. With probability turnChance/100 the pipe turns 90°
// left or right; it never reverses. Returns the (previous, new) direction
// pair used for glyph selection at the new cell.
func (p *Pipe) advance(rng *rand.Rand, turnChance int, policy BoundaryPolicy, w, h int) (prev, next Direction) {
	prev = p.Dir
	next = prev

	if turnChance > 0 && rng.Intn(100) < turnChance {
		perp := prev.Perpendiculars()
		next = perp[rng.Intn(2)]
	}

	nx := p.X + next.dx()
	ny := p.Y + next.dy()

	if nx < 0 || nx >= w || ny < 0 || ny >= h {
		switch policy {
		case PolicyBounce:
			if d, ok := p.deflect(rng, prev, next, w, h); ok {
				next = d
				nx = p.X + next.dx()
				ny = p.Y + next.dy()
				break
			}
			// Degenerate screen, no perpendicular fits: wrap instead.
			fallthrough
		default:
			nx = (nx + w) % w
			ny = (ny + h) % h
		}
	}

	p.X = nx
	p.Y = ny
	p.Dir = next
	return prev, next
}

// deflect picks a 90° turn away from the edge the pipe is about to leave.
// Candidates must stay in bounds and must not reverse the previous
// direction, so the transition always has a corner glyph.
func (p *Pipe) deflect(rng *rand.Rand, prev, blocked Direction, w, h int) (Direction, bool) {
	var candidates []Direction
	for _, d := range blocked.Perpendiculars() {
		if d == prev.Opposite() {
			continue
		}
		nx := p.X + d.dx()
		ny := p.Y + d.dy()
		if nx >= 0 && nx < w && ny >= 0 && ny < h {
			candidates = append(candidates, d)
		}
	}

	switch len(candidates) {
	case 0:
		return blocked, false
	case 1:
		return candidates[0], true
	default:
		return candidates[rng.Intn(len(candidates))], true
	}
}
