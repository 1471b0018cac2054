package game

import "testing"

type item struct{ id int }

func TestCollectionEachSkipsAppends(t *testing.T) {
	c := NewCollection[item](2)
	c.Add(&item{1})
	c.Add(&item{2})

	visited := 0
	c.Each(func(it *item) bool {
		visited++
		c.Add(&item{it.id + 10})
		return true
	})
	if visited != 2 {
		t.Fatalf("visited %d, want 2", visited)
	}
	if c.Len() != 4 {
		t.Fatalf("len = %d, want 4", c.Len())
	}
}

func TestCollectionCompactIsStable(t *testing.T) {
	c := NewCollection[item](0)
	items := []*item{{1}, {2}, {3}, {4}, {5}}
	c.AddAll(items)

	c.Each(func(it *item) bool {
		if it.id%2 == 0 {
			c.Mark(it)
		}
		return true
	})
	if !c.Marked(items[1]) || c.Marked(items[0]) {
		t.Fatalf("mark state wrong")
	}
	if c.Len() != 5 {
		t.Fatalf("marking must not remove")
	}

	if removed := c.Compact(); removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	got := c.Items()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, it := range got {
		if it.id != want[i] {
			t.Fatalf("order broken at %d: %d", i, it.id)
		}
	}
	if c.Marked(items[1]) {
		t.Fatalf("marks should be cleared after compact")
	}
}

func TestCollectionEachStops(t *testing.T) {
	c := NewCollection[item](0)
	c.AddAll([]*item{{1}, {2}, {3}})
	visited := 0
	c.Each(func(*item) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("visited %d, want 2", visited)
	}
}

func TestCollectionItemsIsACopy(t *testing.T) {
	c := NewCollection[item](0)
	c.Add(&item{1})
	items := c.Items()
	items[0] = &item{99}
	if c.At(0).id != 1 {
		t.Fatalf("Items leaked the backing slice")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("clear left %d items", c.Len())
	}
}
