package views

import (
	"errors"
	"sync/atomic"
)

// ErrStale reports a response superseded by a newer request.
var ErrStale = errors.New("stale response discarded")

// Generation hands out increasing tickets. Only the latest ticket is current.
type Generation struct {
	n atomic.Uint64
}

func (g *Generation) Next() uint64 { return g.n.Add(1) }

func (g *Generation) Current(ticket uint64) bool { return g.n.Load() == ticket }
