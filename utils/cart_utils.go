package utils

import (
	"fmt"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/models"
)

// CartLine is one cart entry joined with its catalog product.
type CartLine struct {
	Product  models.Product
	Quantity int
}

// CalculateTotal sums price times quantity over the resolved cart lines.
func CalculateTotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// GetCartLines loads a user's cart and resolves each item against the
// product catalog. Items whose product no longer exists are skipped, so
// they contribute to neither the priced lines nor the total.
func GetCartLines(userID uint) ([]CartLine, float64, error) {
	db := config.DB

	var cartItems []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch cart items: %v", err)
	}

	if len(cartItems) == 0 {
		return nil, 0, nil
	}

	productIDs := make([]uint, 0, len(cartItems))
	for _, item := range cartItems {
		productIDs = append(productIDs, item.ProductID)
	}

	var products []models.Product
	if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %v", err)
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var lines []CartLine
	for _, item := range cartItems {
		product, ok := byID[item.ProductID]
		if !ok {
			LogDebug("Skipping cart item with missing product ID: %d for user ID: %d", item.ProductID, userID)
			continue
		}
		lines = append(lines, CartLine{Product: product, Quantity: item.Quantity})
	}

	return lines, CalculateTotal(lines), nil
}
