package gallery_test

import (
	"testing"

	"artesania/internal/gallery"
)

func TestEmptyGalleryYieldsPlaceholder(t *testing.T) {
	g := gallery.New(nil, true)
	if g.Current() != gallery.Placeholder {
		t.Fatalf("want placeholder, got %q", g.Current())
	}
	// empty entries are dropped, not displayed
	g = gallery.New([]string{"", ""}, true)
	if g.Current() != gallery.Placeholder || g.Len() != 0 {
		t.Fatalf("blank entries should resolve to placeholder, got %q", g.Current())
	}
}

func TestNavigationDisabledExposesFirstOnly(t *testing.T) {
	g := gallery.New([]string{"a.jpg", "b.jpg"}, false)
	if g.Current() != "a.jpg" {
		t.Fatalf("want a.jpg, got %q", g.Current())
	}
	if g.Next() != "a.jpg" || g.Previous() != "a.jpg" {
		t.Fatal("nav disabled: next/previous must not move")
	}
}

func TestSingleImageDoesNotNavigate(t *testing.T) {
	g := gallery.New([]string{"only.jpg"}, true)
	if g.Navigable() {
		t.Fatal("single image should not be navigable")
	}
	if g.Next() != "only.jpg" {
		t.Fatalf("got %q", g.Next())
	}
}

func TestNextPreviousAreCircularInverses(t *testing.T) {
	imgs := []string{"0.jpg", "1.jpg", "2.jpg"}
	g := gallery.New(imgs, true)

	if g.Next(); g.Previous() != "0.jpg" {
		t.Fatalf("next then previous should return to start, at %d", g.Index())
	}
	// previous from 0 wraps to the last image
	if got := g.Previous(); got != "2.jpg" {
		t.Fatalf("want wrap to 2.jpg, got %q", got)
	}
	if got := g.Next(); got != "0.jpg" {
		t.Fatalf("want wrap to 0.jpg, got %q", got)
	}
}

func TestIndexNeverLeavesRange(t *testing.T) {
	imgs := []string{"0.jpg", "1.jpg", "2.jpg", "3.jpg"}
	g := gallery.New(imgs, true)
	steps := []func() string{g.Next, g.Previous, g.Previous, g.Next, g.Next, g.Next, g.Previous}
	for i := 0; i < 200; i++ {
		steps[i%len(steps)]()
		if g.Index() < 0 || g.Index() >= len(imgs) {
			t.Fatalf("index %d out of range after %d steps", g.Index(), i+1)
		}
	}
}

func TestSeekWrapsBothDirections(t *testing.T) {
	g := gallery.New([]string{"0.jpg", "1.jpg", "2.jpg"}, true)
	if got := g.Seek(4); got != "1.jpg" {
		t.Fatalf("Seek(4) = %q, want 1.jpg", got)
	}
	if got := g.Seek(-1); got != "2.jpg" {
		t.Fatalf("Seek(-1) = %q, want 2.jpg", got)
	}
	if got := g.Seek(0); got != "0.jpg" {
		t.Fatalf("Seek(0) = %q, want 0.jpg", got)
	}
}
