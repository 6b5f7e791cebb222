package domain

import "sort"

// Catalog is a Menu flattened into an id index for lookups.
type Catalog struct {
	Menu Menu
	byID map[int]MenuItem
}

// NewCatalog indexes every item of menu by id. When two categories share an id the
// first category in name order wins, so lookups are stable across loads.
func NewCatalog(menu Menu) *Catalog {
	categories := make([]string, 0, len(menu))
	for name := range menu {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	byID := make(map[int]MenuItem)
	for _, name := range categories {
		for _, item := range menu[name] {
			if _, exists := byID[item.ID]; !exists {
				byID[item.ID] = item
			}
		}
	}
	return &Catalog{Menu: menu, byID: byID}
}

func (c *Catalog) Lookup(id int) (MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Len() int {
	return len(c.byID)
}
