package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallgrid/internal/catalog"
)

// FilterBar is the horizontally scrolling row of category chips. The first
// chip clears the filter.
type FilterBar struct {
	widget.BaseWidget

	OnSelected func(category string)

	allText    string
	categories []string
	selected   string

	allChip *widget.Button
	chips   []*widget.Button
	row     *fyne.Container
	scroll  *container.Scroll
}

// NewFilterBar creates a bar that only holds the "All" chip
func NewFilterBar(allText string, onSelected func(category string)) *FilterBar {
	f := &FilterBar{
		OnSelected: onSelected,
		allText:    allText,
	}
	f.allChip = widget.NewButton(allText, func() { f.tap(catalog.AllCategory) })
	f.row = container.NewHBox(f.allChip)
	f.scroll = container.NewHScroll(f.row)
	f.ExtendBaseWidget(f)
	f.applyImportance()
	return f
}

// chipImportance returns how a chip is drawn
func chipImportance(active bool) widget.Importance {
	if active {
		return widget.HighImportance
	}
	return widget.MediumImportance
}

// Update shows categories with selected highlighted. Chips are rebuilt only
// when the category list changes. Must be called on the UI goroutine.
func (f *FilterBar) Update(categories []string, selected string) {
	if !slices.Equal(categories, f.categories) {
		f.categories = slices.Clone(categories)
		f.rebuild()
	}
	f.selected = selected
	f.applyImportance()
}

// SetAllText renames the "All" chip
func (f *FilterBar) SetAllText(text string) {
	f.allText = text
	f.allChip.SetText(text)
}

// Selected returns the highlighted category, "" for none
func (f *FilterBar) Selected() string {
	return f.selected
}

func (f *FilterBar) rebuild() {
	f.chips = f.chips[:0]
	objects := []fyne.CanvasObject{f.allChip}
	for _, category := range f.categories {
		category := category
		chip := widget.NewButton(category, func() { f.tap(category) })
		f.chips = append(f.chips, chip)
		objects = append(objects, chip)
	}
	f.row.Objects = objects
	f.row.Refresh()
}

func (f *FilterBar) applyImportance() {
	f.allChip.Importance = chipImportance(f.selected == "")
	f.allChip.Refresh()
	for i, chip := range f.chips {
		chip.Importance = chipImportance(f.categories[i] == f.selected)
		chip.Refresh()
	}
}

func (f *FilterBar) tap(category string) {
	if f.OnSelected != nil {
		f.OnSelected(category)
	}
}

// CreateRenderer implements fyne.Widget
func (f *FilterBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(f.scroll)
}
