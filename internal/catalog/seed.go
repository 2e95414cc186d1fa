package catalog

// DefaultRestaurants is the built-in catalog used when no external
// catalog source is configured. Prices are written as major-unit
// literals and converted to cents once, when the catalog is loaded.
func DefaultRestaurants() []*Restaurant {
	return []*Restaurant{
		{
			ID:   "starbucks",
			Name: "Starbucks",
			Categories: []MenuCategory{
				{
					ID:   "drinks",
					Name: "Drinks",
					Items: []MenuItem{
						{
							ID:             "caffe-latte",
							Name:           "Caffè Latte",
							Description:    "Rich espresso balanced with steamed milk",
							BasePriceCents: MustCents("4.25"),
							ModifierGroups: []ModifierGroup{
								{
									ID:       "size",
									Name:     "Size",
									Required: true,
									Options: []ModifierOption{
										{ID: "tall", Name: "Tall", PriceCents: 0},
										{ID: "grande", Name: "Grande", PriceCents: MustCents("0.50")},
										{ID: "venti", Name: "Venti", PriceCents: MustCents("0.80")},
									},
								},
								{
									ID:       "milk",
									Name:     "Milk",
									Required: true,
									Options: []ModifierOption{
										{ID: "2percent", Name: "2%", PriceCents: 0},
										{ID: "nonfat", Name: "Nonfat", PriceCents: 0},
										{ID: "almond", Name: "Almond", PriceCents: MustCents("0.60")},
										{ID: "oat", Name: "Oat", PriceCents: MustCents("0.60")},
									},
								},
								{
									ID:       "temp",
									Name:     "Temperature",
									Required: true,
									Options: []ModifierOption{
										{ID: "hot", Name: "Hot", PriceCents: 0},
										{ID: "iced", Name: "Iced", PriceCents: 0},
									},
								},
								{
									ID:          "syrup",
									Name:        "Syrup",
									MultiSelect: true,
									Options: []ModifierOption{
										{ID: "vanilla", Name: "Vanilla", PriceCents: MustCents("0.60")},
										{ID: "caramel", Name: "Caramel", PriceCents: MustCents("0.60")},
										{ID: "hazelnut", Name: "Hazelnut", PriceCents: MustCents("0.60")},
									},
								},
							},
						},
						{
							ID:             "cold-brew",
							Name:           "Cold Brew",
							Description:    "Smooth, bold coffee served cold",
							BasePriceCents: MustCents("3.95"),
							ModifierGroups: []ModifierGroup{
								{
									ID:       "size",
									Name:     "Size",
									Required: true,
									Options: []ModifierOption{
										{ID: "tall", Name: "Tall", PriceCents: 0},
										{ID: "grande", Name: "Grande", PriceCents: MustCents("0.50")},
										{ID: "venti", Name: "Venti", PriceCents: MustCents("0.80")},
									},
								},
								{
									ID:          "additions",
									Name:        "Additions",
									MultiSelect: true,
									Options: []ModifierOption{
										{ID: "sweet-cream", Name: "Sweet Cream", PriceCents: MustCents("0.70")},
										{ID: "extra-ice", Name: "Extra Ice", PriceCents: 0},
									},
								},
							},
						},
					},
				},
				{
					ID:   "food",
					Name: "Food",
					Items: []MenuItem{
						{
							ID:             "bacon-gouda",
							Name:           "Bacon Gouda Sandwich",
							Description:    "Savory bacon and melted gouda on artisan bread",
							BasePriceCents: MustCents("4.45"),
						},
					},
				},
			},
		},
		{
			ID:   "chick-fil-a",
			Name: "Chick-fil-A",
			Categories: []MenuCategory{
				{
					ID:   "mains",
					Name: "Mains",
					Items: []MenuItem{
						{
							ID:             "chicken-sandwich",
							Name:           "Chicken Sandwich",
							Description:    "Original chicken breast on a toasted bun",
							BasePriceCents: MustCents("4.75"),
							ModifierGroups: []ModifierGroup{
								{
									ID:   "cheese",
									Name: "Cheese",
									Options: []ModifierOption{
										{ID: "add-cheese", Name: "Add Cheese", PriceCents: MustCents("0.50")},
									},
								},
								{
									ID:   "pickles",
									Name: "Pickles",
									Options: []ModifierOption{
										{ID: "no-pickles", Name: "No Pickles", PriceCents: 0},
									},
								},
								{
									ID:          "sauces",
									Name:        "Sauces",
									MultiSelect: true,
									Options: []ModifierOption{
										{ID: "cfa", Name: "Chick-fil-A Sauce", PriceCents: 0},
										{ID: "polynesian", Name: "Polynesian", PriceCents: 0},
										{ID: "bbq", Name: "BBQ", PriceCents: 0},
										{ID: "honey-mustard", Name: "Honey Mustard", PriceCents: 0},
									},
								},
							},
						},
						{
							ID:             "nuggets-8",
							Name:           "8-Count Nuggets",
							Description:    "Bite-sized pieces of boneless chicken breast",
							BasePriceCents: MustCents("5.15"),
							ModifierGroups: []ModifierGroup{
								{
									ID:          "sauces",
									Name:        "Sauces",
									MultiSelect: true,
									Options: []ModifierOption{
										{ID: "cfa", Name: "Chick-fil-A Sauce", PriceCents: 0},
										{ID: "polynesian", Name: "Polynesian", PriceCents: 0},
										{ID: "bbq", Name: "BBQ", PriceCents: 0},
										{ID: "honey-mustard", Name: "Honey Mustard", PriceCents: 0},
									},
								},
							},
						},
					},
				},
				{
					ID:   "sides",
					Name: "Sides",
					Items: []MenuItem{
						{
							ID:             "waffle-fries",
							Name:           "Waffle Fries (Medium)",
							Description:    "Crispy waffle-cut potato fries",
							BasePriceCents: MustCents("2.25"),
						},
					},
				},
				{
					ID:   "drinks",
					Name: "Drinks",
					Items: []MenuItem{
						{
							ID:             "lemonade",
							Name:           "Lemonade",
							Description:    "Fresh-squeezed lemonade",
							BasePriceCents: MustCents("2.35"),
							ModifierGroups: []ModifierGroup{
								{
									ID:       "size",
									Name:     "Size",
									Required: true,
									Options: []ModifierOption{
										{ID: "small", Name: "Small", PriceCents: 0},
										{ID: "medium", Name: "Medium", PriceCents: MustCents("0.50")},
										{ID: "large", Name: "Large", PriceCents: MustCents("0.80")},
									},
								},
								{
									ID:   "ice",
									Name: "Ice Level",
									Options: []ModifierOption{
										{ID: "light", Name: "Light Ice", PriceCents: 0},
										{ID: "normal", Name: "Normal Ice", PriceCents: 0},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
