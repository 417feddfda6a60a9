package asyncapi

import "github.com/pb33f/libopenapi/orderedmap"

// Server describes a message broker or endpoint the API is reachable on.
type Server struct {
	base
}

func newServer(raw *Object) *Server {
	return &Server{base{raw: raw}}
}

// URL returns the server URL as written, with {variables} left unexpanded.
func (s *Server) URL() string {
	return s.str("url")
}

func (s *Server) Description() string {
	return s.str("description")
}

func (s *Server) HasDescription() bool {
	return s.has("description")
}

func (s *Server) Protocol() string {
	return s.str("protocol")
}

func (s *Server) ProtocolVersion() string {
	return s.str("protocolVersion")
}

func (s *Server) HasVariables() bool {
	return s.object("variables") != nil
}

func (s *Server) Variables() *orderedmap.Map[string, *ServerVariable] {
	return wrapAll(s.base, "variables", newServerVariable)
}

func (s *Server) VariableNames() []string {
	return keysOf(s.base, "variables")
}

func (s *Server) Variable(name string) *ServerVariable {
	return wrapNamed(s.base, "variables", name, newServerVariable)
}

// ServerVariable is a substitution for a {placeholder} in a server URL.
type ServerVariable struct {
	base
}

func newServerVariable(raw *Object) *ServerVariable {
	return &ServerVariable{base{raw: raw}}
}

// AllowedValues returns the enum of the variable, empty when unrestricted.
// Scalar items are formatted as text; nulls and nested values are skipped.
func (v *ServerVariable) AllowedValues() []string {
	return v.stringList("enum")
}

func (v *ServerVariable) HasAllowedValues() bool {
	return v.has("enum")
}

// DefaultValue returns the default substitution. Unquoted numbers and
// booleans are returned in their YAML spelling.
func (v *ServerVariable) DefaultValue() string {
	return v.scalar("default")
}

func (v *ServerVariable) Description() string {
	return v.str("description")
}

func (v *ServerVariable) Examples() []string {
	return v.stringList("examples")
}
