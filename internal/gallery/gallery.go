// Package gallery picks the primary image of a listing and drives
// cyclic next/previous navigation over its image list.
package gallery

// Gallery holds a position inside an ordered image list. The zero list
// is legal and resolves to the placeholder.
type Gallery struct {
	images  []string
	index   int
	showNav bool
}

// Placeholder marks a listing with no usable images.
const Placeholder = "placeholder"

// New builds a gallery over the given references. Nil and empty entries
// are dropped; order is preserved.
func New(images []string, showNav bool) *Gallery {
	kept := make([]string, 0, len(images))
	for _, img := range images {
		if img != "" {
			kept = append(kept, img)
		}
	}
	return &Gallery{images: kept, showNav: showNav}
}

// Current resolves the image to display. Empty galleries yield the
// placeholder; with navigation off only the first image is exposed.
func (g *Gallery) Current() string {
	if len(g.images) == 0 {
		return Placeholder
	}
	if !g.showNav {
		return g.images[0]
	}
	return g.images[g.index]
}

// Len reports the number of usable images.
func (g *Gallery) Len() int { return len(g.images) }

// Navigable reports whether next/previous controls apply: navigation
// enabled and more than one image.
func (g *Gallery) Navigable() bool { return g.showNav && len(g.images) > 1 }

// Next advances circularly and returns the new current image. It is
// safe on any gallery; the index can never leave range.
func (g *Gallery) Next() string {
	if !g.Navigable() {
		return g.Current()
	}
	g.index = (g.index + 1) % len(g.images)
	return g.images[g.index]
}

// Previous retreats circularly and returns the new current image.
func (g *Gallery) Previous() string {
	if !g.Navigable() {
		return g.Current()
	}
	g.index = (g.index - 1 + len(g.images)) % len(g.images)
	return g.images[g.index]
}

// Seek moves to an absolute offset from the first image, wrapping in
// both directions. Any n is safe, including negatives.
func (g *Gallery) Seek(n int) string {
	if !g.Navigable() {
		return g.Current()
	}
	l := len(g.images)
	g.index = ((n % l) + l) % l
	return g.images[g.index]
}

// Index returns the current position, always in [0, Len) for non-empty
// galleries.
func (g *Gallery) Index() int { return g.index }
