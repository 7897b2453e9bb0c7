package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luffi/internal/domain"
	"luffi/internal/services"
)

func dressLine(qty int) domain.CartLine {
	return domain.CartLine{
		ProductID: "kente-silk-dress", Name: "Kente Silk Dress",
		Price: 299, Quantity: qty, Size: "M", Color: "Red",
	}
}

func TestCart_AddMergesMatchingLines(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"

	cart.Add(sid, dressLine(1))
	cart.Add(sid, dressLine(2))

	v := cart.View(sid)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, 3, v.Lines[0].Quantity)
	assert.Equal(t, 3, v.ItemCount)
	assert.InDelta(t, 3*299.0, v.Total, 1e-9)
}

func TestCart_DifferentSizeOrColorMakesNewLine(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"

	cart.Add(sid, dressLine(1))
	other := dressLine(1)
	other.Size = "L"
	cart.Add(sid, other)

	v := cart.View(sid)
	require.Len(t, v.Lines, 2)
	// insertion order preserved
	assert.Equal(t, "M", v.Lines[0].Size)
	assert.Equal(t, "L", v.Lines[1].Size)
	assert.Equal(t, 2, v.ItemCount)
}

func TestCart_UpdateQuantitySetsDirectly(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	cart.Add(sid, dressLine(1))

	ok := cart.UpdateQuantity(sid, "kente-silk-dress", 5, "M", "Red")
	assert.True(t, ok)

	v := cart.View(sid)
	assert.Equal(t, 5, v.Lines[0].Quantity)
	assert.InDelta(t, 5*299.0, v.Total, 1e-9)
}

func TestCart_UpdateBelowOneIsRejected(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	cart.Add(sid, dressLine(2))

	assert.False(t, cart.UpdateQuantity(sid, "kente-silk-dress", 0, "M", "Red"))
	assert.False(t, cart.UpdateQuantity(sid, "kente-silk-dress", -3, "M", "Red"))

	v := cart.View(sid)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, 2, v.Lines[0].Quantity, "rejected update must leave the line unchanged")
}

func TestCart_UpdateMissingLineIsNoOp(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	cart.Add(sid, dressLine(1))

	assert.False(t, cart.UpdateQuantity(sid, "no-such-product", 3, "", ""))
	assert.Equal(t, 1, cart.View(sid).ItemCount)
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	cart.Add(sid, dressLine(1))

	cart.Remove(sid, "kente-silk-dress", "M", "Red")
	assert.Empty(t, cart.View(sid).Lines)

	// second removal and removal of a line that never existed: no-ops
	cart.Remove(sid, "kente-silk-dress", "M", "Red")
	cart.Remove(sid, "no-such-product", "", "")
	v := cart.View(sid)
	assert.Empty(t, v.Lines)
	assert.Zero(t, v.ItemCount)
	assert.Zero(t, v.Total)
}

func TestCart_AddClampsNonPositiveQuantity(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	cart.Add(sid, dressLine(0))
	assert.Equal(t, 1, cart.View(sid).ItemCount)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	cart := services.NewCartService()
	cart.Add("s1", dressLine(1))

	assert.Equal(t, 1, cart.ItemCount("s1"))
	assert.Zero(t, cart.ItemCount("s2"))
}

func TestCart_DerivedTotalsAcrossLines(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	cart.Add(sid, dressLine(2))
	cart.Add(sid, domain.CartLine{ProductID: "adinkra-symbol-necklace", Name: "Adinkra Symbol Necklace", Price: 79, Quantity: 1})

	v := cart.View(sid)
	assert.Equal(t, 3, v.ItemCount)
	assert.InDelta(t, 2*299.0+79.0, v.Total, 1e-9)
}
