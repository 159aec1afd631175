package model

// Header is the site header: navigation by car type, auth-dependent links
// and the cart counter.
type Header struct {
	Title         string        `json:"title"`
	CarTypes      []CarTypeLink `json:"car_types"`
	CurrentType   string        `json:"current_type"`
	Authenticated bool          `json:"authenticated"`
	User          *HeaderUser   `json:"user,omitempty"`
	Links         []NavLink     `json:"links"`
	CartCount     int64         `json:"cart_count"`
}

type CarTypeLink struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

type HeaderUser struct {
	Name    string `json:"name"`
	Initial string `json:"initial"`
}

type NavLink struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Method string `json:"method"`
}
