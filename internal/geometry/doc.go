// Package geometry provides the value types used by the section layout engine:
// rectangles, sizes, edge insets and the scroll-direction helpers that
// map the primary (scroll) and cross axes onto x/y/width/height.
//
// Every frame the engine builds goes through [ScrollDirection.Rect], so the
// vertical and horizontal cases are transposes of each other by construction.
package geometry
