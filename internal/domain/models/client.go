package models

// Client mirrors the Client table. Telephone and Pesel are optional and
// stored as NULL when blank.
type Client struct {
	IDClient  int64
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Pesel     string
}

// ClientInput carries the creation payload before validation.
type ClientInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Pesel     string `json:"pesel"`
}
