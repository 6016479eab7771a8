package catalog

// DefaultProducts seeds a fresh installation so the storefront renders
// something before the first admin edit.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Premium Digital Course",
			Description:   "Master the fundamentals with our comprehensive digital course.",
			Price:         149.99,
			OriginalPrice: 1000,
			Image:         "/images/capcut.png",
			Category:      "Education",
			Rating:        4.8,
			Reviews:       234,
			InStock:       true,
		},
		{
			ID:            "2",
			Name:          "Pro Design Templates Pack",
			Description:   "100+ professional templates for your business.",
			Price:         49.99,
			OriginalPrice: 149.99,
			Image:         "/images/ap.png",
			Category:      "Design",
			Rating:        4.9,
			Reviews:       567,
			InStock:       true,
		},
	}
}
