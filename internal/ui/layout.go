package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	swatchSize     = 24
	swatchGap      = 6
	statusLines    = 3
	statusSpacing  = 16
)

// HitKind tells what a click on the panel landed on.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitSwatch
	HitControl
)

// Hit is the result of Layout.Hit. Dir is -1 or +1 for control buttons.
type Hit struct {
	Kind  HitKind
	Index int
	Dir   int
}

// Layout positions the side panel: a row of material swatches, a few status
// lines and one row per tunable control.
type Layout struct {
	Width      int
	Swatches   []image.Rectangle
	StatusTop  int
	ControlTop []int
	Minus      []image.Rectangle
	Plus       []image.Rectangle
}

// NewLayout lays out a panel width pixels wide.
func NewLayout(width, materials, controls int) Layout {
	l := Layout{Width: width}
	top := panelPadding + headerBaseline + 10
	x := panelPadding
	for range materials {
		if x+swatchSize > width-panelPadding && x > panelPadding {
			x = panelPadding
			top += swatchSize + swatchGap
		}
		l.Swatches = append(l.Swatches, image.Rect(x, top, x+swatchSize, top+swatchSize))
		x += swatchSize + swatchGap
	}
	top += swatchSize + swatchGap
	l.StatusTop = top
	top += statusLines*statusSpacing + swatchGap

	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		l.ControlTop = append(l.ControlTop, rowTop)
		l.Minus = append(l.Minus, minus)
		l.Plus = append(l.Plus, plus)
	}
	return l
}

// Height is the panel height needed to show everything.
func (l Layout) Height() int {
	if n := len(l.ControlTop); n > 0 {
		return l.ControlTop[n-1] + lineHeight + panelPadding
	}
	return l.StatusTop + statusLines*statusSpacing + panelPadding
}

// Hit reports what lies under panel-relative point (x, y).
func (l Layout) Hit(x, y int) Hit {
	p := image.Pt(x, y)
	for i, r := range l.Swatches {
		if p.In(r) {
			return Hit{Kind: HitSwatch, Index: i}
		}
	}
	for i := range l.Minus {
		if p.In(l.Minus[i]) {
			return Hit{Kind: HitControl, Index: i, Dir: -1}
		}
		if p.In(l.Plus[i]) {
			return Hit{Kind: HitControl, Index: i, Dir: 1}
		}
	}
	return Hit{}
}
