// Package docmap turns a single linear document (HTML or Markdown) into a
// navigable, hierarchical model of its structure: a tree of sections keyed
// by stable dot-paths, plus a size-bounded chunking view that lets large
// documents be consumed incrementally without losing structural context.
//
// This package contains domain types, interfaces, and the pure structure
// logic (tree building, navigation, chunking) following Ben Johnson's
// Standard Package Layout. Implementations with external dependencies live
// in subdirectories named after their primary dependency (e.g., sqlite/,
// goldmark/, html/).
package docmap
