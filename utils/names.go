package utils

import (
	"math/rand"

	"github.com/Pallinder/go-randomdata"
)

// NameGenerator hands out unique names for anonymous scene nodes.
type NameGenerator struct {
	used map[string]struct{}
}

// NewNameGenerator reseeds the package global generator of go-randomdata.
// Generators therefore share one random stream: the sequence is only
// deterministic while a single generator is in use at a time.
func NewNameGenerator(seed int64) *NameGenerator {
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	return &NameGenerator{used: make(map[string]struct{})}
}

// Reserve marks an existing name as taken.
func (g *NameGenerator) Reserve(name string) {
	g.used[name] = struct{}{}
}

func (g *NameGenerator) Taken(name string) bool {
	_, ok := g.used[name]
	return ok
}

// Name returns a fresh name that was neither generated nor reserved before.
func (g *NameGenerator) Name(prefix string) string {
	for {
		name := randomdata.SillyName()
		if prefix != "" {
			name = prefix + "-" + name
		}
		if !g.Taken(name) {
			g.Reserve(name)
			return name
		}
	}
}
