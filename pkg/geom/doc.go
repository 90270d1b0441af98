// Package geom provides the small set of geometric value types shared by the
// gesture controllers.
//
// # Rectangles
//
// [Rect] is an offset box in the CSS sense: Left and Top are measured from
// the containing element, Width and Height are the rendered extent. The same
// type is used for screen-space bounding rectangles.
//
// # Lengths
//
// Sizes that leave the engine are [Length] values. A length is either a
// pixel amount or the sentinel [Full] meaning "match the parent", which is
// serialized as the literal string "100%":
//
//	geom.Px(150).String() // "150px"
//	geom.Full.String()    // "100%"
//
// [FormatPx] formats a bare pixel amount the same way. Numbers use their
// shortest decimal form, so 12.5 becomes "12.5px" and 150 becomes "150px".
//
// # Angles
//
// [Degrees], [NormalizeDegrees] and [RoundTo] implement the angle math used
// by rotation: atan2 in degrees, folding into (-180, 180], and rounding to a
// fixed increment with half-up semantics.
package geom
