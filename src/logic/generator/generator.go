package generator

import (
	"errors"
	"math/rand"
	"time"

	"blockpuzzle/src/base"

	"github.com/google/uuid"
)

var ErrEmptyCatalog = errors.New("empty shape catalog")

// Generator draws batches from an immutable catalog with its own random source
type Generator struct {
	rng     *rand.Rand
	catalog []base.Shape
	colors  int
}

func NewGenerator(rng *rand.Rand, catalog []base.Shape, colors int) (*Generator, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if colors <= 0 {
		return nil, errors.New("palette must have at least one colour")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shapes := make([]base.Shape, len(catalog))
	copy(shapes, catalog)
	return &Generator{rng: rng, catalog: shapes, colors: colors}, nil
}

// Batch never fails, the catalog and palette were checked by NewGenerator
func (g *Generator) Batch() base.Inventory {
	inv, _ := GenerateBatch(g.rng, g.catalog, g.colors)
	return inv
}

// GenerateBatch picks shape and colour uniformly for each of the BatchSize pieces.
// Ids come from rng too, so a seeded source gives a reproducible batch.
func GenerateBatch(rng *rand.Rand, catalog []base.Shape, colors int) (base.Inventory, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if colors <= 0 {
		return nil, errors.New("palette must have at least one colour")
	}
	inv := make(base.Inventory, 0, base.BatchSize)
	for i := 0; i < base.BatchSize; i++ {
		shape := catalog[rng.Intn(len(catalog))]
		color := rng.Intn(colors)
		inv = append(inv, base.Piece{
			ID:    newID(rng),
			Shape: shape,
			Color: color,
		})
	}
	return inv, nil
}

func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
