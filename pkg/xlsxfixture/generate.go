package xlsxfixture

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
)

// Value ranges.
const (
	minPrice         = 10.0
	maxPrice         = 1000.0
	maxProductAge    = 365 // days
	maxSaleAge       = 30  // days
	maxQuantity      = 10
	productIDCeiling = ProductCount
)

var errZeroClock = errors.New("clock returned zero time")

// Generator produces fixture records from a single random source created once per run.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a Generator. Without a seed it draws one from crypto/rand.
func NewGenerator(opts Options) (*Generator, error) {
	var s1, s2 uint64
	if opts.Seed != nil {
		s1, s2 = *opts.Seed, *opts.Seed^0x9e3779b97f4a7c15
	} else {
		var buf [16]byte
		if _, err := crand.Read(buf[:]); err != nil {
			return nil, environmentError("seed", err)
		}
		s1 = binary.LittleEndian.Uint64(buf[:8])
		s2 = binary.LittleEndian.Uint64(buf[8:])
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(s1, s2)),
		now: opts.clock(),
	}, nil
}

// GenerateProducts returns ProductCount products ordered by id.
func (g *Generator) GenerateProducts() ([]models.Product, error) {
	now, err := g.clockNow()
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, ProductCount)
	for id := 1; id <= ProductCount; id++ {
		products = append(products, models.NewProduct(
			id,
			models.Categories[g.rng.IntN(len(models.Categories))],
			g.price(),
			g.rng.IntN(2) == 1,
			daysBefore(now, g.rng.IntN(maxProductAge+1)),
		))
	}
	return products, nil
}

// GenerateSales returns SaleCount sales ordered by sale id.
func (g *Generator) GenerateSales() ([]models.Sale, error) {
	now, err := g.clockNow()
	if err != nil {
		return nil, err
	}

	sales := make([]models.Sale, 0, SaleCount)
	for id := 1; id <= SaleCount; id++ {
		sales = append(sales, models.NewSale(
			id,
			1+g.rng.IntN(productIDCeiling),
			1+g.rng.IntN(maxQuantity),
			daysBefore(now, g.rng.IntN(maxSaleAge+1)),
		))
	}
	return sales, nil
}

func (g *Generator) clockNow() (time.Time, error) {
	now := g.now()
	if now.IsZero() {
		return time.Time{}, environmentError("clock", errZeroClock)
	}
	return now, nil
}

// price draws from [minPrice, maxPrice] and rounds to cents.
func (g *Generator) price() float64 {
	p := minPrice + g.rng.Float64()*(maxPrice-minPrice)
	return roundCents(p)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func daysBefore(t time.Time, days int) time.Time {
	return t.Add(-time.Duration(days) * 24 * time.Hour)
}
