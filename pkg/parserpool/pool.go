// Package parserpool provides a pool of gnparser instances for concurrent
// normalization of plant names.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides parsers of botanical names for concurrent use.
type Pool interface {
	// Parse parses a scientific name string according to the botanical
	// code. It takes a parser from the pool, and puts it back after
	// parsing. Safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Canonical returns the simple canonical form of a name, or false if
	// the name cannot be parsed.
	Canonical(nameString string) (string, bool)

	// Close shuts down the pool. After calling Close, the pool should not
	// be used.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of parsers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)

	return &pool{ch: gnparser.NewPool(cfg, poolSize)}
}

func (p *pool) Parse(nameString string) parsed.Parsed {
	// blocks if all parsers are busy
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser
	return res
}

func (p *pool) Canonical(nameString string) (string, bool) {
	res := p.Parse(nameString)
	if !res.Parsed || res.Canonical == nil {
		return "", false
	}
	return res.Canonical.Simple, true
}

func (p *pool) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}
