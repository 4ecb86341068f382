// Package model holds the cached geometry of a sectioned collection: per-element
// models, section models and the Store that owns them.
//
// The Store is the only mutable structure in the engine. It builds frames
// section by section, keeps a prefix table of section offsets so content-size
// and offset queries are cheap, reconciles batch edits against a snapshot of the
// pre-edit sections, and folds host-measured sizes back into cached frames.
//
// Frames held by element models are section-relative on the primary (scroll)
// axis and absolute on the cross axis. The Store adds the section offset when
// it hands out Attributes.
package model
