// Package asyncapi provides read-only views over a parsed AsyncAPI document.
//
// A Document wraps a raw *Object (an ordered mapping of decoded YAML or JSON
// values) and hands out typed models such as Info, Server and Channel on
// demand. Models are built on every call and never cached; each one keeps a
// reference to its raw section, which JSON returns unchanged:
//
//	doc := asyncapi.NewDocument(raw)
//	for name, srv := range doc.Servers().FromOldest() {
//		fmt.Println(name, srv.URL())
//	}
//
// Absent data is reported with zero values: "" for scalar fields, nil for
// single sections and named lookups, and empty collections for plural
// accessors. Nothing in this package validates the document or resolves
// $ref pointers.
//
// Models never mutate the raw document, so any number of goroutines may read
// through them at once. Wrapping is not snapshotting: a caller that mutates
// the raw document while others read it must synchronize on its own.
package asyncapi
