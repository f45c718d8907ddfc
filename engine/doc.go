// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the SQL scalar
// functions used when rendering result tables. It keeps a thin surface so
// other packages share the same driver instance.
package engine
