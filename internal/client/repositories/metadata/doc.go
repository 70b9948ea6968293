// Package metadata is a key/value repository over the "metadata" table of
// the local SQLite database. The credential store keeps its single sealed
// token here.
package metadata
