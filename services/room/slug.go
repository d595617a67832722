package room

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Room codes are short human-readable slugs, easy to read out loud or type
// on a phone. They are generated without looking at user input and are not
// guaranteed unique up front; the unique index on the rooms collection plus
// the retry loop in CreateRoom enforce uniqueness.
var slugAdjectives = []string{
	"brave", "calm", "clever", "cosy", "eager", "fancy", "gentle", "happy",
	"jolly", "keen", "lively", "lucky", "mellow", "merry", "nimble", "proud",
	"quick", "quiet", "shiny", "smart", "snug", "spicy", "sunny", "sweet",
	"tasty", "warm", "witty", "zesty",
}

var slugAnimals = []string{
	"badger", "bear", "bison", "crane", "deer", "dove", "falcon", "ferret",
	"fox", "goose", "heron", "ibis", "koala", "lemur", "lynx", "marmot",
	"otter", "owl", "panda", "rabbit", "raven", "robin", "seal", "sparrow",
	"swan", "tiger", "walrus", "wren",
}

// SlugGenerator produces room codes of the form "brave-tiger-42".
type SlugGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSlugGenerator returns a time-seeded slug generator.
func NewSlugGenerator() *SlugGenerator {
	return NewSlugGeneratorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSlugGeneratorWithRand returns a slug generator with an explicit random
// source for deterministic tests.
func NewSlugGeneratorWithRand(rng *rand.Rand) *SlugGenerator {
	return &SlugGenerator{rng: rng}
}

// Generate returns a fresh lowercase slug.
func (g *SlugGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	adjective := slugAdjectives[g.rng.Intn(len(slugAdjectives))]
	animal := slugAnimals[g.rng.Intn(len(slugAnimals))]
	number := 10 + g.rng.Intn(90)
	return fmt.Sprintf("%s-%s-%d", adjective, animal, number)
}
