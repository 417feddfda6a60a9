package asyncapi

// Info is the metadata section of a document.
type Info struct {
	base
}

func newInfo(raw *Object) *Info {
	return &Info{base{raw: raw}}
}

func (i *Info) Title() string {
	return i.str("title")
}

// Version returns the version of the described API, not of AsyncAPI itself.
func (i *Info) Version() string {
	return i.str("version")
}

func (i *Info) Description() string {
	return i.str("description")
}

func (i *Info) HasDescription() bool {
	return i.has("description")
}

func (i *Info) TermsOfService() string {
	return i.str("termsOfService")
}

func (i *Info) Contact() *Contact {
	return wrapOne(i.base, "contact", newContact)
}

func (i *Info) License() *License {
	return wrapOne(i.base, "license", newLicense)
}

type Contact struct {
	base
}

func newContact(raw *Object) *Contact {
	return &Contact{base{raw: raw}}
}

func (c *Contact) Name() string {
	return c.str("name")
}

func (c *Contact) URL() string {
	return c.str("url")
}

func (c *Contact) Email() string {
	return c.str("email")
}

type License struct {
	base
}

func newLicense(raw *Object) *License {
	return &License{base{raw: raw}}
}

func (l *License) Name() string {
	return l.str("name")
}

func (l *License) URL() string {
	return l.str("url")
}
