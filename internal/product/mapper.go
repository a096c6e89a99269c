package product

// toProductWithSeller composes the flat repository row into the nested
// catalog view.
func toProductWithSeller(row Row) *ProductWithSeller {
	return &ProductWithSeller{
		Product: Product{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Category:    row.Category,
			Price:       row.Price,
			ImageURL:    row.ImageURL,
			SellerID:    row.SellerID,
			IsActive:    row.IsActive,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		Seller: Seller{
			ID:              row.SellerID,
			Email:           row.SellerEmail,
			FirstName:       row.SellerFirstName,
			LastName:        row.SellerLastName,
			ProfileImageURL: row.SellerImageURL,
		},
	}
}

func toProductWithSellerList(rows []Row) []*ProductWithSeller {
	items := make([]*ProductWithSeller, 0, len(rows))
	for _, row := range rows {
		items = append(items, toProductWithSeller(row))
	}
	return items
}
