package gallery

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimension and blur bounds accepted by the image service.
const (
	MinDimension = 100
	MaxDimension = 1000
	MinBlur      = 0
	MaxBlur      = 10
)

// Filter is the committed set of image parameters driving a gallery batch.
type Filter struct {
	Width  int
	Height int
	Blur   int
	Grey   bool
}

// ParseDimension validates a width/height field as entered in the filter
// sheet. The returned error message is shown inline next to the field.
func ParseDimension(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("required")
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("must be a whole number")
	}
	if n < MinDimension || n > MaxDimension {
		return 0, fmt.Errorf("must be between %d and %d", MinDimension, MaxDimension)
	}
	return n, nil
}

// ClampBlur bounds a blur level to the service's accepted range.
func ClampBlur(n int) int {
	if n < MinBlur {
		return MinBlur
	}
	if n > MaxBlur {
		return MaxBlur
	}
	return n
}

// Valid reports whether the filter is inside service bounds. Committed
// filters are always valid; this guards programmatic construction.
func (f Filter) Valid() bool {
	return f.Width >= MinDimension && f.Width <= MaxDimension &&
		f.Height >= MinDimension && f.Height <= MaxDimension &&
		f.Blur >= MinBlur && f.Blur <= MaxBlur
}

// Item is one fetched gallery entry. Immutable once fetched; the list is
// replaced wholesale on every refresh.
type Item struct {
	ID           string
	URI          string
	Photographer string
	Width        int
	Height       int
}

// DisplaySize scales the item's dimensions to fit maxWidth, preserving
// aspect ratio. Items narrower than maxWidth keep their native size.
func (it Item) DisplaySize(maxWidth int) (w, h int) {
	if it.Width <= 0 || it.Height <= 0 || maxWidth <= 0 {
		return 0, 0
	}
	if it.Width <= maxWidth {
		return it.Width, it.Height
	}
	h = it.Height * maxWidth / it.Width
	if h < 1 {
		h = 1
	}
	return maxWidth, h
}
