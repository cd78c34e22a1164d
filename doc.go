// Package lattice provides 3D shapes on the integer lattice and the routines
// that decide containment, intersection, and closest and farthest points
// between them.
//
// All coordinates are integers. A shape's points are lattice points: a
// [Segment] consists of the points of its Bresenham raster, a [Sphere] of the
// points within the midpoint-circle raster of each of its cross-sections. This
// makes every answer exact, at the cost of answers that differ from those of
// the ideal, continuous shapes.
//
// # Shapes
//
// The package includes the following shapes, all implementing [Shape]:
//   - [Segment]
//   - [Box]
//   - [Sphere]
//   - [Path]
//   - [MultiShape]
//
// [Intersects] decides whether any two shapes intersect. Closed shapes
// include their interior, so a box inside a sphere intersects it.
//
// # Paths and path iterators
//
// A [Path] is a sequence of path elements: [MoveTo], [LineTo], [QuadTo],
// [CurveTo], and [Close]. Every shape can describe its outline as a
// [PathIterator], and [FlatteningIterator] replaces the curves of any outline
// with lines. Use [Elements] to range over an iterator.
//
// # Crossing numbers
//
// Paths decide containment by counting how often their outline crosses a
// ray cast from the query towards +x, see [CrossingsFromPoint] and its
// siblings. The [WindingRule] of the path turns the count into an answer.
// Whenever the query touches the outline, the count becomes the sentinel
// [ShapeIntersects].
//
// Intersections between two paths are decided with a [PathShadow], which
// avoids replaying one path for every edge of the other.
//
// # Rasters
//
// [LineRaster] and [CirclePerimeter] enumerate the lattice points of
// segments and circles. They are the ground truth for what it means for a
// lattice point to lie on a segment or a circle.
package lattice
