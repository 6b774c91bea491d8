package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
)

func TestSetQuantity(t *testing.T) {
	t.Run("quantity below one removes the item", func(t *testing.T) {
		shop := newFakeShop()
		removed := 0
		shop.mux.HandleFunc("DELETE /api/cart/7/3", func(w http.ResponseWriter, r *http.Request) {
			removed++
		})

		carts := services.NewCartService(newShopClient(t, shop))
		require.NoError(t, carts.SetQuantity(context.Background(), 7, 3, 0))

		assert.Equal(t, 1, removed)
		// Only the delete; no fetch, no re-add.
		assert.Equal(t, int64(1), shop.requests.Load())
	})

	t.Run("re-adds the item with the new quantity", func(t *testing.T) {
		shop := newFakeShop()
		var readded models.CartItem

		shop.mux.HandleFunc("GET /api/cart/7", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 3, "qty": 2, "priceAtAdd": 10.50, "product": {"id": 5, "title": "Benchy"}}]`))
		})
		shop.mux.HandleFunc("DELETE /api/cart/7/3", func(w http.ResponseWriter, r *http.Request) {})
		shop.mux.HandleFunc("POST /api/cart/7", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&readded))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 9}`))
		})

		carts := services.NewCartService(newShopClient(t, shop))
		require.NoError(t, carts.SetQuantity(context.Background(), 7, 3, 4))

		assert.Zero(t, readded.ID, "the replacement must be created as a new item")
		require.NotNil(t, readded.Qty)
		assert.Equal(t, 4, *readded.Qty)
		require.NotNil(t, readded.PriceAtAdd, "the price snapshot must survive the re-add")
		assert.True(t, readded.PriceAtAdd.Equal(dec("10.50")))
		require.NotNil(t, readded.Product)
		assert.Equal(t, int64(5), readded.Product.ID)
	})

	t.Run("unknown item", func(t *testing.T) {
		shop := newFakeShop()
		shop.mux.HandleFunc("GET /api/cart/7", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		carts := services.NewCartService(newShopClient(t, shop))
		err := carts.SetQuantity(context.Background(), 7, 3, 4)
		assert.ErrorIs(t, err, services.ErrCartItemNotFound)
	})
}
