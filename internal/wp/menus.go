package wp

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// menusEndpoint and menuItemsEndpoint are provided by a server-side menus
// plugin; they are not part of WordPress core.
const (
	menusEndpoint     = "/wp-json/wp/v2/menus"
	menuItemsEndpoint = "/wp-json/wp/v2/menu-items"
)

// menusURL prefers the configured menus endpoint, for installs whose menu
// plugin registers somewhere other than the conventional path.
func (c *Client) menusURL() string {
	if c.cfg.MenusURL != "" {
		return c.cfg.MenusURL
	}
	return menusEndpoint
}

// Menus lists the available menus. An empty slice on failure; navigation is
// never allowed to break a page render.
func (c *Client) Menus(ctx context.Context) []Menu {
	v, err := memoized(ctx, "menus", "", func() (interface{}, error) {
		var menus []Menu
		if _, err := c.get(ctx, c.menusURL(), nil, &menus); err != nil {
			return nil, err
		}
		return menus, nil
	})
	if err != nil {
		c.log.Warn(fmt.Sprintf("wp: menus unavailable: %v", err))
		return nil
	}
	return v.([]Menu)
}

// menuStrategy is one way of locating menu items. Strategies run in order;
// the first to produce a non-empty result wins, and any failure falls
// through to the next.
type menuStrategy struct {
	name string
	run  func(ctx context.Context) ([]MenuItem, error)
}

// MenuItems resolves navigation items for the query, trying in strict
// order: menu slug, location-to-menu mapping from settings, direct menu
// id, and finally top-level pages as synthetic menu items. Exhausting all
// strategies yields an empty list, never an error.
func (c *Client) MenuItems(ctx context.Context, query MenuQuery) []MenuItem {
	strategies := []menuStrategy{}
	if query.Slug != "" {
		strategies = append(strategies, menuStrategy{"slug", func(ctx context.Context) ([]MenuItem, error) {
			return c.menuItemsBySlug(ctx, query.Slug)
		}})
	}
	if query.Location != "" {
		strategies = append(strategies, menuStrategy{"location", func(ctx context.Context) ([]MenuItem, error) {
			return c.menuItemsByLocation(ctx, query.Location)
		}})
	}
	if query.MenuID != 0 {
		strategies = append(strategies, menuStrategy{"menu_id", func(ctx context.Context) ([]MenuItem, error) {
			return c.menuItemsByID(ctx, query.MenuID)
		}})
	}
	strategies = append(strategies, menuStrategy{"pages", c.menuItemsFromPages})

	for _, strategy := range strategies {
		items, err := strategy.run(ctx)
		if err != nil {
			c.log.Warn(fmt.Sprintf("wp: menu strategy %q failed: %v", strategy.name, err))
			continue
		}
		if len(items) > 0 {
			return items
		}
	}

	c.log.Warn("wp: no menu items found with any strategy")
	return nil
}

// menuItemsBySlug looks up a menu by slug and fetches its items.
func (c *Client) menuItemsBySlug(ctx context.Context, slug string) ([]MenuItem, error) {
	q := url.Values{}
	q.Set("slug", slug)
	var menus []Menu
	if _, err := c.get(ctx, c.menusURL(), q, &menus); err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, nil
	}
	return c.menuItemsByID(ctx, menus[0].ID)
}

// menuItemsByLocation consults the customizer's location-to-menu mapping.
func (c *Client) menuItemsByLocation(ctx context.Context, location string) ([]MenuItem, error) {
	settings := c.SiteSettings(ctx)
	menuID, ok := settings.NavMenuLocations[location]
	if !ok || menuID == 0 {
		return nil, nil
	}
	return c.menuItemsByID(ctx, menuID)
}

// menuItemsByID fetches the items of a specific menu.
func (c *Client) menuItemsByID(ctx context.Context, menuID int) ([]MenuItem, error) {
	q := url.Values{}
	q.Set("menus", strconv.Itoa(menuID))
	q.Set("acf_format", "standard")
	v, err := memoized(ctx, "menu_items", q.Encode(), func() (interface{}, error) {
		var items []MenuItem
		if _, err := c.get(ctx, menuItemsEndpoint, q, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]MenuItem), nil
}

// menuItemsFromPages maps top-level pages to synthetic menu items, the
// fallback for installs without a menus plugin.
func (c *Client) menuItemsFromPages(ctx context.Context) ([]MenuItem, error) {
	list, err := c.Pages(ctx, ListParams{PerPage: 20})
	if err != nil {
		return nil, err
	}
	items := make([]MenuItem, 0, len(list.Pages))
	for _, page := range list.Pages {
		items = append(items, MenuItem{
			ID:        page.ID,
			Title:     page.Title,
			URL:       page.Link,
			Target:    "_self",
			Object:    "page",
			ObjectID:  page.ID,
			Parent:    page.Parent,
			MenuOrder: page.MenuOrder,
			Type:      "post_type",
			TypeLabel: "Page",
		})
	}
	return items, nil
}

// MenuNode is a menu item with its resolved children; the rendered menus
// are two levels deep (flat bar plus dropdowns).
type MenuNode struct {
	MenuItem
	Children []*MenuNode
}

// BuildMenuTree structures flat menu items into a tree by parent id. An
// item whose parent does not resolve within the given set is treated as
// top-level rather than dropped. Siblings keep menu order.
func BuildMenuTree(items []MenuItem) []*MenuNode {
	nodes := make(map[int]*MenuNode, len(items))
	for i := range items {
		nodes[items[i].ID] = &MenuNode{MenuItem: items[i]}
	}

	var roots []*MenuNode
	for i := range items {
		node := nodes[items[i].ID]
		if parent, ok := nodes[items[i].Parent]; ok && items[i].Parent != 0 && items[i].Parent != items[i].ID {
			parent.Children = append(parent.Children, node)
		} else {
			// Orphaned parent references become top-level entries.
			roots = append(roots, node)
		}
	}

	byOrder := func(nodes []*MenuNode) func(i, j int) bool {
		return func(i, j int) bool { return nodes[i].MenuOrder < nodes[j].MenuOrder }
	}
	sort.SliceStable(roots, byOrder(roots))
	for _, root := range roots {
		sort.SliceStable(root.Children, byOrder(root.Children))
	}
	return roots
}
