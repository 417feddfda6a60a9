package asyncapi

import "github.com/pb33f/libopenapi/orderedmap"

// Document is the root view over a raw AsyncAPI document.
type Document struct {
	base
}

// NewDocument wraps raw without copying it.
func NewDocument(raw *Object) *Document {
	return &Document{base{raw: raw}}
}

// ID returns the document identifier, or "" when absent.
func (d *Document) ID() string {
	return d.str("id")
}

// Version returns the AsyncAPI specification version the document declares.
func (d *Document) Version() string {
	return d.str("asyncapi")
}

// DefaultContentType returns the content type assumed for messages that do
// not set one.
func (d *Document) DefaultContentType() string {
	return d.str("defaultContentType")
}

// Info returns the info section, or nil when absent.
func (d *Document) Info() *Info {
	return wrapOne(d.base, "info", newInfo)
}

// HasServers reports whether the document has a servers mapping.
func (d *Document) HasServers() bool {
	return d.object("servers") != nil
}

// Servers returns every server keyed by name in document order. The map is
// empty when the document has no servers.
func (d *Document) Servers() *orderedmap.Map[string, *Server] {
	return wrapAll(d.base, "servers", newServer)
}

// ServerNames returns the server names in document order.
func (d *Document) ServerNames() []string {
	return keysOf(d.base, "servers")
}

// Server returns the named server, or nil when name is empty or unknown.
func (d *Document) Server(name string) *Server {
	return wrapNamed(d.base, "servers", name, newServer)
}

// HasChannels reports whether the document has a channels mapping.
func (d *Document) HasChannels() bool {
	return d.object("channels") != nil
}

// Channels returns every channel keyed by name in document order. The map
// is empty when the document has no channels.
func (d *Document) Channels() *orderedmap.Map[string, *Channel] {
	return wrapAll(d.base, "channels", newChannel)
}

// ChannelNames returns the channel names in document order.
func (d *Document) ChannelNames() []string {
	return keysOf(d.base, "channels")
}

// Channel returns the named channel, or nil when name is empty or unknown.
func (d *Document) Channel(name string) *Channel {
	return wrapNamed(d.base, "channels", name, newChannel)
}

// HasTags reports whether the document declares a tags key.
func (d *Document) HasTags() bool {
	return d.has("tags")
}

// Tags returns the document tags in order. Items that are not mappings are
// skipped.
func (d *Document) Tags() []*Tag {
	return wrapList(d.base, "tags", newTag)
}

// ExternalDocs returns the external documentation reference, or nil when
// absent.
func (d *Document) ExternalDocs() *ExternalDocs {
	return wrapOne(d.base, "externalDocs", newExternalDocs)
}
