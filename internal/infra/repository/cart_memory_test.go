package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/johnsmera/checkout/internal/domain/model"
	repo "github.com/johnsmera/checkout/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func assertTotalInvariant(t *testing.T, cart model.Cart) {
	t.Helper()
	var want int64
	for _, item := range cart.Items {
		want += item.UnitPrice * item.Quantity
	}
	assert.Equal(t, want, cart.Total)
}

func TestCartMemory_AddItem(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	item, err := r.AddItem(ctx, "u1", "p1", 2, 10000)
	require.NoError(t, err)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, int64(2), item.Quantity)

	cart, err := r.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(20000), cart.Total)
	assertTotalInvariant(t, cart)
}

func TestCartMemory_AddItem_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	first, err := r.AddItem(ctx, "u1", "p1", 1, 10000)
	require.NoError(t, err)

	// the second add keeps the first snapshot price even if the caller
	// passes a different one
	merged, err := r.AddItem(ctx, "u1", "p1", 3, 99999)
	require.NoError(t, err)

	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, int64(4), merged.Quantity)
	assert.Equal(t, int64(10000), merged.UnitPrice)

	cart, _ := r.GetCart(ctx, "u1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(40000), cart.Total)
	assertTotalInvariant(t, cart)
}

func TestCartMemory_UpdateItem(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	item, _ := r.AddItem(ctx, "u1", "p1", 2, 5000)

	updated, err := r.UpdateItem(ctx, "u1", item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Quantity)

	cart, _ := r.GetCart(ctx, "u1")
	assert.Equal(t, int64(25000), cart.Total)
	assertTotalInvariant(t, cart)
}

func TestCartMemory_UpdateItem_NotFound(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	_, err := r.UpdateItem(ctx, "u1", "missing", 5)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCartMemory_RemoveItem(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	item, _ := r.AddItem(ctx, "u1", "p1", 2, 5000)
	_, _ = r.AddItem(ctx, "u1", "p2", 1, 3000)

	require.NoError(t, r.RemoveItem(ctx, "u1", item.ID))

	cart, _ := r.GetCart(ctx, "u1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3000), cart.Total)
	assertTotalInvariant(t, cart)

	// removing an absent item is a no-op, not an error
	require.NoError(t, r.RemoveItem(ctx, "u1", "missing"))
}

func TestCartMemory_Clear(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	_, _ = r.AddItem(ctx, "u1", "p1", 2, 5000)
	require.NoError(t, r.Clear(ctx, "u1"))

	cart, _ := r.GetCart(ctx, "u1")
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
}

func TestCartMemory_GetCart_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	_, _ = r.AddItem(ctx, "u1", "p1", 2, 5000)

	cart, _ := r.GetCart(ctx, "u1")
	cart.Items[0].Quantity = 999
	cart.Total = -1

	fresh, _ := r.GetCart(ctx, "u1")
	assert.Equal(t, int64(2), fresh.Items[0].Quantity)
	assert.Equal(t, int64(10000), fresh.Total)
}

func TestCartMemory_CartsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	r := NewCartMemoryRepository(&seqIDGen{})

	_, _ = r.AddItem(ctx, "u1", "p1", 2, 5000)

	other, _ := r.GetCart(ctx, "u2")
	assert.Empty(t, other.Items)
}
