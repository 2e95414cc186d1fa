package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The JSON catalog document mirrors the menu tree but carries prices in
// major units ("4.25"), the way the upstream catalog feed publishes them.
// ParseCatalog is the single ingestion point where those prices become
// integer cents.

type restaurantDoc struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Categories []categoryDoc `json:"categories"`
}

type categoryDoc struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Items []itemDoc `json:"items"`
}

type itemDoc struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	BasePrice      json.Number `json:"base_price"`
	ModifierGroups []groupDoc  `json:"modifier_groups"`
}

type groupDoc struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Required    bool        `json:"required"`
	MultiSelect bool        `json:"multi_select"`
	Options     []optionDoc `json:"options"`
}

type optionDoc struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

// ParseCatalog decodes a catalog JSON document into menu trees with all
// prices in integer cents.
func ParseCatalog(data []byte) ([]*Restaurant, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc struct {
		Restaurants []restaurantDoc `json:"restaurants"`
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	restaurants := make([]*Restaurant, 0, len(doc.Restaurants))
	for _, rd := range doc.Restaurants {
		restaurant, err := buildRestaurant(rd)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

func buildRestaurant(rd restaurantDoc) (*Restaurant, error) {
	restaurant := &Restaurant{ID: rd.ID, Name: rd.Name}

	for _, cd := range rd.Categories {
		category := MenuCategory{ID: cd.ID, Name: cd.Name}

		for _, itd := range cd.Items {
			base, err := Cents(itd.BasePrice.String())
			if err != nil {
				return nil, fmt.Errorf("item %s: %w", itd.ID, err)
			}

			item := MenuItem{
				ID:             itd.ID,
				Name:           itd.Name,
				Description:    itd.Description,
				BasePriceCents: base,
			}

			for _, gd := range itd.ModifierGroups {
				group := ModifierGroup{
					ID:          gd.ID,
					Name:        gd.Name,
					Required:    gd.Required,
					MultiSelect: gd.MultiSelect,
				}
				for _, od := range gd.Options {
					delta, err := Cents(od.Price.String())
					if err != nil {
						return nil, fmt.Errorf("option %s: %w", od.ID, err)
					}
					group.Options = append(group.Options, ModifierOption{
						ID:         od.ID,
						Name:       od.Name,
						PriceCents: delta,
					})
				}
				item.ModifierGroups = append(item.ModifierGroups, group)
			}

			category.Items = append(category.Items, item)
		}

		restaurant.Categories = append(restaurant.Categories, category)
	}

	return restaurant, nil
}
