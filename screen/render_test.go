package screen

import "testing"

func TestRendererOwnsFontFace(t *testing.T) {
	a, b := NewRenderer(nil), NewRenderer(nil)
	if a.face == nil || a.face == b.face {
		t.Fatalf("each renderer should build its own face")
	}
	a.Close()
	if a.face != nil {
		t.Fatalf("Close should drop the face")
	}
	if b.face == nil {
		t.Fatalf("closing one renderer must not affect another")
	}
	// drawing text after Close is a no-op
	a.drawText(nil, "late", 0, 0, colorWhite, alignLeft)
}
