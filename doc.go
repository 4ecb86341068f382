// Package flowlayout computes the geometry of a sectioned, scrollable
// collection of items.
//
// Users import this single package for the complete public API: the Layout
// engine, its DataSource and Provider boundaries, batch edits, invalidation
// and the geometry value types.
//
// A Layout caches every frame it computes. Full rebuilds, metrics-only passes,
// batch edits and host-measured sizes each touch only what they must, so
// queries stay cheap while the collection changes.
package flowlayout
