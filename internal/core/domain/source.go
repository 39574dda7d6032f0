package domain

// DefaultSourceType is assigned to sources created by name reconciliation.
const DefaultSourceType = "stomp"

// Source describes a connection to an external system. Name is unique per owner.
type Source struct {
	ID       string `json:"id"`
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Login    string `json:"login"`
	Passcode string `json:"passcode"`
	VHost    string `json:"vhost"`
}

// NewPlaceholderSource returns a source with blank connection fields.
func NewPlaceholderSource(owner, name string) *Source {
	return &Source{Owner: owner, Name: name, Type: DefaultSourceType}
}
