package contact

import (
	"testing"
)

func validRequest() CreateRequest {
	return CreateRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Mobile:  "+1 555 000 1111",
		Message: "Let's talk about a product role.",
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRequest)
		fields []string
	}{
		{
			name:   "missing name",
			mutate: func(r *CreateRequest) { r.Name = "" },
			fields: []string{"name"},
		},
		{
			name:   "missing email",
			mutate: func(r *CreateRequest) { r.Email = "" },
			fields: []string{"email"},
		},
		{
			name:   "missing mobile",
			mutate: func(r *CreateRequest) { r.Mobile = "" },
			fields: []string{"mobile"},
		},
		{
			name:   "missing message",
			mutate: func(r *CreateRequest) { r.Message = "" },
			fields: []string{"message"},
		},
		{
			name:   "whitespace only counts as missing",
			mutate: func(r *CreateRequest) { r.Name = "   \t" },
			fields: []string{"name"},
		},
		{
			name: "multiple missing fields reported together",
			mutate: func(r *CreateRequest) {
				r.Email = ""
				r.Mobile = ""
			},
			fields: []string{"email", "mobile"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, verr := Validate(req)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			if verr.Message != MsgMissingFields {
				t.Errorf("message = %q, want %q", verr.Message, MsgMissingFields)
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Errorf("got %d failing fields, want %d (%v)", len(verr.Fields), len(tt.fields), verr.Fields)
			}
			for _, f := range tt.fields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("field %q missing from %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	bad := []string{
		"plainaddress",
		"no-at-sign.com",
		"missing@tld",
		"spaces in@example.com",
		"@example.com",
		"user@",
	}
	for _, addr := range bad {
		req := validRequest()
		req.Email = addr
		if _, verr := Validate(req); verr == nil || verr.Message != MsgInvalidEmail {
			t.Errorf("email %q: got %v, want %q", addr, verr, MsgInvalidEmail)
		}
	}

	good := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.uk",
	}
	for _, addr := range good {
		req := validRequest()
		req.Email = addr
		if _, verr := Validate(req); verr != nil {
			t.Errorf("email %q rejected: %v", addr, verr)
		}
	}
}

func TestValidate_MobileFormat(t *testing.T) {
	good := []string{
		"+1 555 000 1111",
		"07700900123",
		"+44 (0) 7700-900123",
		"555.000.1111",
	}
	for _, m := range good {
		req := validRequest()
		req.Mobile = m
		if _, verr := Validate(req); verr != nil {
			t.Errorf("mobile %q rejected: %v", m, verr)
		}
	}

	bad := []string{
		"call me",
		"+",
		"++15550001111",
		"555x0001111",
	}
	for _, m := range bad {
		req := validRequest()
		req.Mobile = m
		if _, verr := Validate(req); verr == nil || verr.Message != MsgInvalidMobile {
			t.Errorf("mobile %q: got %v, want %q", m, verr, MsgInvalidMobile)
		}
	}
}

func TestValidate_Normalizes(t *testing.T) {
	req := CreateRequest{
		Name:    "  Jane Doe  ",
		Email:   " JANE@Example.com ",
		Mobile:  " +1 555 000 1111 ",
		Message: "  hello  ",
		Company: "  Acme  ",
		Role:    "",
		Budget:  "   ",
	}

	sub, verr := Validate(req)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}

	if sub.Name != "Jane Doe" {
		t.Errorf("name = %q", sub.Name)
	}
	if sub.Email != "jane@example.com" {
		t.Errorf("email = %q, want lower-cased trimmed", sub.Email)
	}
	if sub.Mobile != "+1 555 000 1111" {
		t.Errorf("mobile = %q", sub.Mobile)
	}
	if sub.Company == nil || *sub.Company != "Acme" {
		t.Errorf("company = %v, want Acme", sub.Company)
	}
	if sub.Role != nil {
		t.Errorf("empty role should be nil, got %v", sub.Role)
	}
	if sub.Budget != nil {
		t.Errorf("blank budget should be nil, got %v", sub.Budget)
	}
}

// Required-field check runs before format checks: an empty email plus a
// bad mobile reports the missing field, not the format.
func TestValidate_CheckOrder(t *testing.T) {
	req := validRequest()
	req.Email = ""
	req.Mobile = "not a number"

	_, verr := Validate(req)
	if verr == nil || verr.Message != MsgMissingFields {
		t.Fatalf("got %v, want %q", verr, MsgMissingFields)
	}
}
