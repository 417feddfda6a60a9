package asyncapi

// Channel is an addressable component through which messages flow.
type Channel struct {
	base
}

func newChannel(raw *Object) *Channel {
	return &Channel{base{raw: raw}}
}

func (c *Channel) Description() string {
	return c.str("description")
}

func (c *Channel) HasDescription() bool {
	return c.has("description")
}

// HasPublish reports whether the channel declares a publish operation.
func (c *Channel) HasPublish() bool {
	return c.object("publish") != nil
}

// HasSubscribe reports whether the channel declares a subscribe operation.
func (c *Channel) HasSubscribe() bool {
	return c.object("subscribe") != nil
}
