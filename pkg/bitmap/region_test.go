package bitmap

import "testing"

func TestResolveBounds(t *testing.T) {
	tests := []struct {
		name                       string
		mainW, mainH, tmplW, tmplH int
		region                     Region
		startX, endX, startY, endY int
	}{
		{
			name:  "full region 10x10 with 2x2 template",
			mainW: 10, mainH: 10, tmplW: 2, tmplH: 2,
			region: FullRegion(),
			startX: 0, endX: 9, startY: 0, endY: 9,
		},
		{
			name:  "full region 10x10 with 1x1 template",
			mainW: 10, mainH: 10, tmplW: 1, tmplH: 1,
			region: FullRegion(),
			startX: 0, endX: 10, startY: 0, endY: 10,
		},
		{
			name:  "bounded region clamped by template size",
			mainW: 10, mainH: 10, tmplW: 3, tmplH: 3,
			region: Region{X: 5, Y: 5, Width: 10, Height: 10},
			startX: 5, endX: 8, startY: 5, endY: 8,
		},
		{
			name:  "negative origin clamped to zero",
			mainW: 10, mainH: 10, tmplW: 2, tmplH: 2,
			region: Region{X: -3, Y: -3, Width: Unbounded, Height: Unbounded},
			startX: 0, endX: 9, startY: 0, endY: 9,
		},
		{
			name:  "region x beyond main width is empty",
			mainW: 10, mainH: 10, tmplW: 2, tmplH: 2,
			region: Region{X: 10, Y: 0, Width: Unbounded, Height: Unbounded},
			startX: 10, endX: 9, startY: 0, endY: 9,
		},
		{
			name:  "template larger than main is empty",
			mainW: 5, mainH: 5, tmplW: 8, tmplH: 8,
			region: FullRegion(),
			startX: 0, endX: -2, startY: 0, endY: -2,
		},
		{
			name:  "zero width region is empty",
			mainW: 10, mainH: 10, tmplW: 2, tmplH: 2,
			region: Region{X: 4, Y: 4, Width: 0, Height: 0},
			startX: 4, endX: 4, startY: 4, endY: 4,
		},
		{
			name:  "partial region inside bounds",
			mainW: 20, mainH: 20, tmplW: 4, tmplH: 4,
			region: Region{X: 2, Y: 3, Width: 6, Height: 5},
			startX: 2, endX: 8, startY: 3, endY: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startX, endX, startY, endY := resolveBounds(tt.mainW, tt.mainH, tt.tmplW, tt.tmplH, tt.region)
			if startX != tt.startX || endX != tt.endX || startY != tt.startY || endY != tt.endY {
				t.Errorf("resolveBounds() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					startX, endX, startY, endY, tt.startX, tt.endX, tt.startY, tt.endY)
			}
		})
	}
}

func TestFullRegion(t *testing.T) {
	r := FullRegion()
	if r.X != 0 || r.Y != 0 || r.Width != Unbounded || r.Height != Unbounded {
		t.Errorf("FullRegion() = %+v", r)
	}
}
