package gc2145

import "testing"

func TestFindModeNearest(t *testing.T) {
	cases := []struct {
		w, h int
		want ModeID
	}{
		{320, 240, ModeQVGA},
		{800, 600, ModeSVGA},
		{1600, 1200, ModeUXGA},
		{1, 1, ModeQVGA},
		{700, 500, ModeVGA},
		{900, 700, ModeSVGA},
		{4000, 4000, ModeUXGA},
	}
	for _, c := range cases {
		m := findMode(c.w, c.h, true)
		if m == nil {
			t.Fatalf("findMode(%d, %d, nearest) = nil", c.w, c.h)
		}
		if m.ID != c.want {
			t.Fatalf("findMode(%d, %d, nearest) = mode %d, want %d", c.w, c.h, m.ID, c.want)
		}
	}
}

func TestFindModeNearestTieBreaksFirstListed(t *testing.T) {
	// (480, 360) is equidistant from QVGA and VGA under the abs-diff
	// metric; the first catalog entry must win.
	m := findMode(480, 360, true)
	if m == nil || m.ID != ModeQVGA {
		t.Fatalf("tie broke to %+v, want QVGA", m)
	}
}

func TestFindModeExact(t *testing.T) {
	if m := findMode(640, 480, false); m == nil || m.ID != ModeVGA {
		t.Fatalf("exact VGA lookup = %+v", m)
	}
	for _, c := range []FrameSize{{641, 480}, {640, 481}, {0, 0}, {801, 601}} {
		if m := findMode(c.Width, c.Height, false); m != nil {
			t.Fatalf("findMode(%d, %d, exact) = mode %d, want nil", c.Width, c.Height, m.ID)
		}
	}
}

func TestModeCatalogInvariants(t *testing.T) {
	for i, m := range modeCatalog {
		if int(m.ID) != i {
			t.Fatalf("mode %d has id %d; ids must be dense from zero", i, m.ID)
		}
		if m.Width > m.TotalWidth || m.Height > m.TotalHeight {
			t.Fatalf("mode %d: active exceeds total", m.ID)
		}
		if len(m.prog) == 0 {
			t.Fatalf("mode %d has empty register program", m.ID)
		}
	}
}

func TestFrameSizes(t *testing.T) {
	sizes := FrameSizes(CodeYUYV8)
	if len(sizes) != len(modeCatalog) {
		t.Fatalf("FrameSizes = %d entries, want %d", len(sizes), len(modeCatalog))
	}
	for i, s := range sizes {
		if s.Width != modeCatalog[i].Width || s.Height != modeCatalog[i].Height {
			t.Fatalf("size[%d] = %+v, want %dx%d", i, s, modeCatalog[i].Width, modeCatalog[i].Height)
		}
	}
	if got := FrameSizes(PixelCode(0xBEEF)); got != nil {
		t.Fatalf("FrameSizes(unknown) = %v, want nil", got)
	}
}
