// Package geom pins down the parameter-vector contract shared by the
// constraint functors and the external geometry system.
//
// Every geometry instance is represented by one flat []float64 whose layout
// is fixed per geometry tag:
//
//	Point3D    — [px py pz]                          (3 params)
//	Line3D     — [px py pz  dx dy dz]                (6 params)
//	Plane3D    — [px py pz  nx ny nz]                (6 params, same as line)
//	Cylinder3D — [px py pz  dx dy dz  r]             (7 params)
//
// The constraint framework never owns these vectors; it addresses semantic
// sub-ranges through Span, a borrowed (offset, length) view whose lifetime
// is tied to the owning slice. A Span is never itself an owner.
//
// Layout lookups are resolved once at constraint-setup time; a tag without
// the requested quantity (a point has no direction) surfaces
// ErrNoDirection there, never during evaluation.
package geom
