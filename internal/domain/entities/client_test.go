package entities

import (
	"errors"
	"testing"
)

func validClient() Client {
	return Client{
		Name:     "João Silva",
		Email:    "joao.silva@email.com",
		Phone:    "11987654321",
		Document: "12345678900",
	}
}

func TestClient_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validClient().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*Client)
		field  string
	}{
		{name: "short name", mutate: func(c *Client) { c.Name = "Jo" }, field: "name"},
		{name: "whitespace name", mutate: func(c *Client) { c.Name = "   a   " }, field: "name"},
		{name: "missing email", mutate: func(c *Client) { c.Email = "" }, field: "email"},
		{name: "malformed email", mutate: func(c *Client) { c.Email = "joao.silva" }, field: "email"},
		{name: "email without tld", mutate: func(c *Client) { c.Email = "joao@email" }, field: "email"},
		{name: "short phone", mutate: func(c *Client) { c.Phone = "119876" }, field: "phone"},
		{name: "short document", mutate: func(c *Client) { c.Document = "1234567890" }, field: "document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validClient()
			tc.mutate(&c)

			err := c.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}
