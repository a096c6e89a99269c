package cart

import "bazario-be/internal/product"

func toItemWithProduct(row Row) *ItemWithProduct {
	return &ItemWithProduct{
		CartItem: CartItem{
			ID:        row.ItemID,
			UserID:    row.UserID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			CreatedAt: row.CreatedAt,
		},
		Product: product.ProductWithSeller{
			Product: product.Product{
				ID:          row.ProductID,
				Title:       row.Title,
				Description: row.Description,
				Category:    row.Category,
				Price:       row.Price,
				ImageURL:    row.ProductImageURL,
				SellerID:    row.SellerID,
				IsActive:    row.ProductActive,
			},
			Seller: product.Seller{
				ID:              row.SellerID,
				Email:           row.SellerEmail,
				FirstName:       row.SellerFirstName,
				LastName:        row.SellerLastName,
				ProfileImageURL: row.SellerImageURL,
			},
		},
	}
}

func toItemWithProductList(rows []Row) []*ItemWithProduct {
	items := make([]*ItemWithProduct, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItemWithProduct(row))
	}
	return items
}
