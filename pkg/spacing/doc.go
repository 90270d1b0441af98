// Package spacing parses, edits and serializes margin/padding boxes.
//
// A [Box] is the ordered tuple [top, right, bottom, left] in pixels. [Parse]
// reads the CSS shorthand form using the standard expansion rule:
//
//	"10px"            → [10 10 10 10]
//	"10px 4px"        → [10 4 10 4]
//	"10px 4px 2px"    → [10 4 2 4]
//	"1px 2px 3px 4px" → [1 2 3 4]
//
// [Box.String] always writes the explicit four-value form. Padding values
// are clamped at zero by [Kind.Clamp]; margins may be negative.
//
// [Overlay] computes the rectangle a spacing handle highlights while it is
// dragged: inside the element for padding, outside it for margin.
package spacing
