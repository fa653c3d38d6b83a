package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFillsBothAliases(t *testing.T) {
	fromRemote := Product{ImageURL: "img.png", StockQuantity: 4}
	fromRemote.Normalize()
	assert.Equal(t, "img.png", fromRemote.Image)
	assert.Equal(t, 4, fromRemote.Stock)

	fromLocal := Product{Image: "img.png", Stock: 4}
	fromLocal.Normalize()
	assert.Equal(t, "img.png", fromLocal.ImageURL)
	assert.Equal(t, 4, fromLocal.StockQuantity)
}

func TestNormalizeRemoteNamesWinOnDivergence(t *testing.T) {
	p := Product{
		Image:         "old.png",
		ImageURL:      "new.png",
		Stock:         2,
		StockQuantity: 7,
	}
	p.Normalize()
	assert.Equal(t, "new.png", p.Image)
	assert.Equal(t, "new.png", p.ImageURL)
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, 7, p.StockQuantity)
}

func TestApplyDefaults(t *testing.T) {
	p := Product{Name: "Widget"}
	p.ApplyDefaults()
	assert.Equal(t, DefaultRating, p.Rating)
	assert.Equal(t, 0, p.Reviews)

	rated := Product{Name: "Widget", Rating: 3.2, Reviews: 12}
	rated.ApplyDefaults()
	assert.Equal(t, 3.2, rated.Rating)
	assert.Equal(t, 12, rated.Reviews)
}

func TestProductUpdateAppliesOnlyPresentFields(t *testing.T) {
	p := Product{Name: "Widget", Price: 10, Stock: 5, StockQuantity: 5}

	newPrice := 12.5
	newStock := 9
	update := ProductUpdate{Price: &newPrice, Stock: &newStock}
	update.Apply(&p)

	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, 9, p.Stock)
	assert.Equal(t, 9, p.StockQuantity)
}

func TestProductUpdateClampsNegativeReviews(t *testing.T) {
	p := Product{Name: "Widget", Reviews: 12}

	negative := -3
	update := ProductUpdate{Reviews: &negative}
	update.Apply(&p)

	assert.Equal(t, 0, p.Reviews)
}
