package order

// Recipient identifies who receives the delivery and where.
type Recipient struct {
	name    string
	contact string
	address string
}

func NewRecipient(name, contact, address string) Recipient {
	return Recipient{
		name:    name,
		contact: contact,
		address: address,
	}
}

func (r Recipient) Name() string {
	return r.name
}

// Contact is usually an e-mail address or phone number.
func (r Recipient) Contact() string {
	return r.contact
}

func (r Recipient) Address() string {
	return r.address
}
