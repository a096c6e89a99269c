package order

// attachItems groups the flat item rows under their orders, preserving the
// order listing sort.
func attachItems(orders []Order, items []OrderItem) []*Order {
	byOrder := make(map[string][]OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	result := make([]*Order, 0, len(orders))
	for i := range orders {
		o := orders[i]
		o.Items = byOrder[o.ID]
		result = append(result, &o)
	}

	return result
}
