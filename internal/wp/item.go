package wp

// Item is the unified view of a content entity (post or page) that the
// resolver, metadata builder and templates work with. Post and page ids
// are unique per type only, so Type travels with the id.
type Item struct {
	ID            int
	Type          string // "post" or "page"
	Slug          string
	Status        string
	Link          string
	Date          string
	Modified      string
	Title         string
	Content       string
	Excerpt       string
	FeaturedMedia int
	Categories    []int
	Yoast         *Yoast
}

// ItemTypePost and ItemTypePage are the two content item types.
const (
	ItemTypePost = "post"
	ItemTypePage = "page"
)

// Item flattens a Post into the unified shape.
func (p *Post) Item() *Item {
	return &Item{
		ID:            p.ID,
		Type:          ItemTypePost,
		Slug:          p.Slug,
		Status:        p.Status,
		Link:          p.Link,
		Date:          p.Date,
		Modified:      p.Modified,
		Title:         p.Title.Rendered,
		Content:       p.Content.Rendered,
		Excerpt:       p.Excerpt.Rendered,
		FeaturedMedia: p.FeaturedMedia,
		Categories:    p.Categories,
		Yoast:         p.Yoast,
	}
}

// Item flattens a Page into the unified shape.
func (p *Page) Item() *Item {
	return &Item{
		ID:            p.ID,
		Type:          ItemTypePage,
		Slug:          p.Slug,
		Status:        p.Status,
		Link:          p.Link,
		Date:          p.Date,
		Modified:      p.Modified,
		Title:         p.Title.Rendered,
		Content:       p.Content.Rendered,
		Excerpt:       p.Excerpt.Rendered,
		FeaturedMedia: p.FeaturedMedia,
		Yoast:         p.Yoast,
	}
}
