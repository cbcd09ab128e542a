// Package registry implements the canonical manual-page registry: an
// ordered, conflict-checked store of (section, page, owner) records with a
// flat tab-separated persisted form. A registry is built once per command
// invocation, either by ingestion (Insert) or from its persisted file
// (Load), and is never mutated concurrently.
package registry
