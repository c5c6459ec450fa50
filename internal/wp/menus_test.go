package wp

import "testing"

func TestBuildMenuTree(t *testing.T) {
	t.Run("two level tree", func(t *testing.T) {
		items := []MenuItem{
			{ID: 1, Title: Rendered{Rendered: "Home"}, Parent: 0, MenuOrder: 1},
			{ID: 2, Title: Rendered{Rendered: "Blog"}, Parent: 0, MenuOrder: 2},
			{ID: 3, Title: Rendered{Rendered: "Team"}, Parent: 4, MenuOrder: 2},
			{ID: 4, Title: Rendered{Rendered: "About"}, Parent: 0, MenuOrder: 3},
			{ID: 5, Title: Rendered{Rendered: "History"}, Parent: 4, MenuOrder: 1},
		}

		tree := BuildMenuTree(items)

		if len(tree) != 3 {
			t.Fatalf("expected 3 top-level nodes, got %d", len(tree))
		}
		if tree[0].Title.Rendered != "Home" || tree[1].Title.Rendered != "Blog" || tree[2].Title.Rendered != "About" {
			t.Errorf("unexpected top-level order: %s, %s, %s", tree[0].Title.Rendered, tree[1].Title.Rendered, tree[2].Title.Rendered)
		}

		about := tree[2]
		if len(about.Children) != 2 {
			t.Fatalf("expected 2 children under About, got %d", len(about.Children))
		}
		if about.Children[0].Title.Rendered != "History" || about.Children[1].Title.Rendered != "Team" {
			t.Errorf("children not ordered by menu order: %s, %s", about.Children[0].Title.Rendered, about.Children[1].Title.Rendered)
		}
	})

	t.Run("orphaned parent becomes top level", func(t *testing.T) {
		items := []MenuItem{
			{ID: 1, Title: Rendered{Rendered: "Home"}, Parent: 0, MenuOrder: 1},
			{ID: 2, Title: Rendered{Rendered: "Lost"}, Parent: 99, MenuOrder: 2},
		}

		tree := BuildMenuTree(items)

		if len(tree) != 2 {
			t.Fatalf("expected orphan to surface at top level, got %d nodes", len(tree))
		}
		if tree[1].Title.Rendered != "Lost" {
			t.Errorf("expected orphan 'Lost' at top level, got %s", tree[1].Title.Rendered)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if tree := BuildMenuTree(nil); len(tree) != 0 {
			t.Errorf("expected empty tree, got %d nodes", len(tree))
		}
	})
}
