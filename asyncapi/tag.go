package asyncapi

type Tag struct {
	base
}

func newTag(raw *Object) *Tag {
	return &Tag{base{raw: raw}}
}

func (t *Tag) Name() string {
	return t.str("name")
}

func (t *Tag) Description() string {
	return t.str("description")
}

func (t *Tag) ExternalDocs() *ExternalDocs {
	return wrapOne(t.base, "externalDocs", newExternalDocs)
}

// ExternalDocs points at documentation hosted outside the document.
type ExternalDocs struct {
	base
}

func newExternalDocs(raw *Object) *ExternalDocs {
	return &ExternalDocs{base{raw: raw}}
}

func (e *ExternalDocs) URL() string {
	return e.str("url")
}

func (e *ExternalDocs) Description() string {
	return e.str("description")
}
