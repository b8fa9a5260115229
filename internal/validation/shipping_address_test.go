package validation

import (
	"testing"
)

func validShippingAddressInput() CreateShippingAddressInput {
	return CreateShippingAddressInput{
		Email:        "ana@example.com",
		FullName:     "Ana Silva",
		Cpf:          "123.456.789-09",
		Phone:        "(11) 91234-5678",
		ZipCode:      "01310-100",
		Address:      "Av. Paulista",
		Number:       "1000",
		Complement:   "Apto 21",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}
}

func TestValidateShippingAddressAccepts(t *testing.T) {
	in := validShippingAddressInput()
	in.Normalize()
	if fields := in.Validate(); fields != nil {
		t.Fatalf("expected no field errors, got %v", fields)
	}

	// Complement is the only optional field.
	in = validShippingAddressInput()
	in.Complement = ""
	in.Normalize()
	if fields := in.Validate(); fields != nil {
		t.Fatalf("expected no field errors without complement, got %v", fields)
	}
}

func TestValidateShippingAddressRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(in *CreateShippingAddressInput)
		field   string
		message string
	}{
		{"empty email", func(in *CreateShippingAddressInput) { in.Email = "" }, "email", "Email inválido."},
		{"malformed email", func(in *CreateShippingAddressInput) { in.Email = "ana@@example" }, "email", "Email inválido."},
		{"empty full name", func(in *CreateShippingAddressInput) { in.FullName = "  " }, "full_name", "Nome completo é obrigatório."},
		{"cpf short check digit", func(in *CreateShippingAddressInput) { in.Cpf = "123.456.789-0" }, "cpf", "CPF inválido."},
		{"cpf unmasked", func(in *CreateShippingAddressInput) { in.Cpf = "12345678909" }, "cpf", "CPF inválido."},
		{"cpf with letters", func(in *CreateShippingAddressInput) { in.Cpf = "abc.def.ghi-jk" }, "cpf", "CPF inválido."},
		{"phone without space", func(in *CreateShippingAddressInput) { in.Phone = "(11)91234-5678" }, "phone", "Celular inválido."},
		{"phone eight digit line", func(in *CreateShippingAddressInput) { in.Phone = "(11) 1234-5678" }, "phone", "Celular inválido."},
		{"zip without dash", func(in *CreateShippingAddressInput) { in.ZipCode = "01310100" }, "zip_code", "CEP inválido."},
		{"zip too long", func(in *CreateShippingAddressInput) { in.ZipCode = "01310-1000" }, "zip_code", "CEP inválido."},
		{"empty address", func(in *CreateShippingAddressInput) { in.Address = "" }, "address", "Endereço é obrigatório."},
		{"empty number", func(in *CreateShippingAddressInput) { in.Number = "" }, "number", "Número é obrigatório."},
		{"empty neighborhood", func(in *CreateShippingAddressInput) { in.Neighborhood = "" }, "neighborhood", "Bairro é obrigatório."},
		{"empty city", func(in *CreateShippingAddressInput) { in.City = "" }, "city", "Cidade é obrigatória."},
		{"empty state", func(in *CreateShippingAddressInput) { in.State = "" }, "state", "Estado é obrigatório."},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			in := validShippingAddressInput()
			tc.mutate(&in)
			in.Normalize()
			fields := in.Validate()
			if fields == nil {
				t.Fatalf("expected a field error for %q", tc.field)
			}
			if got := fields[tc.field]; got != tc.message {
				t.Fatalf("field %q: got %q want %q", tc.field, got, tc.message)
			}
			if len(fields) != 1 {
				t.Fatalf("expected only %q to fail, got %v", tc.field, fields)
			}
		})
	}
}

func TestValidateShippingAddressReportsAllFailures(t *testing.T) {
	in := CreateShippingAddressInput{}
	in.Normalize()
	fields := in.Validate()
	if len(fields) != 10 {
		t.Fatalf("expected every required field to fail, got %d: %v", len(fields), fields)
	}
}

func TestNormalizeShippingAddressInput(t *testing.T) {
	in := CreateShippingAddressInput{
		Email:    "  ANA@Example.COM ",
		FullName: "  Ana Silva  ",
		City:     " São Paulo ",
	}
	in.Normalize()
	if in.Email != "ana@example.com" {
		t.Fatalf("email: got %q", in.Email)
	}
	if in.FullName != "Ana Silva" {
		t.Fatalf("full name: got %q", in.FullName)
	}
	if in.City != "São Paulo" {
		t.Fatalf("city: got %q", in.City)
	}
}
