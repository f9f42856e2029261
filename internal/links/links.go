// Package links computes the navigation links attached to user API
// responses. It is pure presentation glue: links depend only on the user id,
// never on persistence or events.
package links

import "fmt"

const usersPath = "/api/users"

// Link is a single hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// For returns the navigation links for a single user resource.
func For(id int64) map[string]Link {
	self := fmt.Sprintf("%s/%d", usersPath, id)
	return map[string]Link{
		"self":      {Href: self},
		"update":    {Href: self},
		"delete":    {Href: self},
		"all-users": {Href: usersPath},
	}
}

// ForCollection returns the links for the user collection resource.
func ForCollection() map[string]Link {
	return map[string]Link{
		"self":   {Href: usersPath},
		"create": {Href: usersPath},
	}
}
