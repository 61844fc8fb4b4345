package xlsxfixture

import (
	"math"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
)

var fixedNow = time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

func seeded(seed uint64) Options {
	opts := DefaultOptions()
	opts.Seed = &seed
	opts.Now = func() time.Time { return fixedNow }
	return opts
}

func newTestGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	gen, err := NewGenerator(seeded(seed))
	require.NoError(t, err)
	return gen
}

func TestGenerateProducts(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40} {
		products, err := newTestGenerator(t, seed).GenerateProducts()
		require.NoError(t, err)
		require.Len(t, products, ProductCount)

		for i, p := range products {
			assert.Equal(t, i+1, p.ID)
			assert.Equal(t, "Product_"+strconv.Itoa(i+1), p.Name)
			assert.Contains(t, models.Categories, p.Category)
			assert.GreaterOrEqual(t, p.Price, 10.0)
			assert.LessOrEqual(t, p.Price, 1000.0)
			assert.InDelta(t, math.Round(p.Price*100), p.Price*100, 1e-6, "price %v has more than 2 decimals", p.Price)

			age := fixedNow.Sub(p.CreatedDate)
			assert.GreaterOrEqual(t, age, time.Duration(0))
			assert.LessOrEqual(t, age, 365*24*time.Hour)
			assert.Zero(t, age%(24*time.Hour), "created_date should be whole days before now")
		}
	}
}

func TestGenerateSales(t *testing.T) {
	for _, seed := range []uint64{0, 7, 99} {
		sales, err := newTestGenerator(t, seed).GenerateSales()
		require.NoError(t, err)
		require.Len(t, sales, SaleCount)

		for i, s := range sales {
			assert.Equal(t, i+1, s.SaleID)
			assert.Equal(t, "Customer_"+strconv.Itoa(i+1), s.Customer)
			assert.GreaterOrEqual(t, s.ProductID, 1)
			assert.LessOrEqual(t, s.ProductID, 100)
			assert.GreaterOrEqual(t, s.Quantity, 1)
			assert.LessOrEqual(t, s.Quantity, 10)

			age := fixedNow.Sub(s.SaleDate)
			assert.GreaterOrEqual(t, age, time.Duration(0))
			assert.LessOrEqual(t, age, 30*24*time.Hour)
		}
	}
}

func TestGenerateDeterministicSeed(t *testing.T) {
	a, err := newTestGenerator(t, 5).GenerateProducts()
	require.NoError(t, err)
	b, err := newTestGenerator(t, 5).GenerateProducts()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := newTestGenerator(t, 6).GenerateProducts()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateCoversCategories(t *testing.T) {
	products, err := newTestGenerator(t, 3).GenerateProducts()
	require.NoError(t, err)

	var seen []string
	for _, p := range products {
		if !slices.Contains(seen, p.Category) {
			seen = append(seen, p.Category)
		}
	}
	assert.ElementsMatch(t, models.Categories, seen)
}

func TestNewGeneratorRandomSeed(t *testing.T) {
	gen, err := NewGenerator(Options{})
	require.NoError(t, err)

	products, err := gen.GenerateProducts()
	require.NoError(t, err)
	assert.Len(t, products, ProductCount)
}

func TestGenerateZeroClock(t *testing.T) {
	opts := seeded(1)
	opts.Now = func() time.Time { return time.Time{} }
	gen, err := NewGenerator(opts)
	require.NoError(t, err)

	_, err = gen.GenerateProducts()
	assert.ErrorIs(t, err, ErrEnvironment)
	_, err = gen.GenerateSales()
	assert.ErrorIs(t, err, ErrEnvironment)
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{10, 10},
		{10.004, 10},
		{10.005, 10.01},
		{999.996, 1000},
		{123.456, 123.46},
	}

	for _, tt := range tests {
		if got := roundCents(tt.input); got != tt.expected {
			t.Errorf("roundCents(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
