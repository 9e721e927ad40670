package product_test

import (
	"testing"

	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct("Dropbox")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Dropbox", p.Name())
		assert.Equal(t, int64(0), p.ID())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct("")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore product with identifier", func(t *testing.T) {
		p, err := product.RestoreProduct(4, "Dropbox")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(4), p.ID())
		assert.Equal(t, "Dropbox", p.Name())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.RestoreProduct(4, "")

		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value product fails validation", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("nil product fails validation", func(t *testing.T) {
		var p *product.Product

		require.Error(t, p.Validate())
	})
}

func TestProduct_IsEqual(t *testing.T) {
	a, _ := product.RestoreProduct(1, "Dropbox")
	b, _ := product.RestoreProduct(1, "Slack")
	c, _ := product.RestoreProduct(2, "Dropbox")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
