package validation

import (
	"net/mail"
	"regexp"

	"github.com/yungbote/bewear-backend/internal/normalization"
	"github.com/yungbote/bewear-backend/internal/platform/apierr"
)

// Field formats match what the checkout form produces: CPF and phone come
// pre-masked, CEP with its dash.
var (
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}-\d{3}$`)
)

type CreateShippingAddressInput struct {
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Cpf          string `json:"cpf"`
	Phone        string `json:"phone"`
	ZipCode      string `json:"zip_code"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Normalize trims every field and lowercases the email. Validate expects a
// normalized input.
func (in *CreateShippingAddressInput) Normalize() {
	in.Email = normalization.ParseInputString(in.Email)
	in.FullName = normalization.TrimInputString(in.FullName)
	in.Cpf = normalization.TrimInputString(in.Cpf)
	in.Phone = normalization.TrimInputString(in.Phone)
	in.ZipCode = normalization.TrimInputString(in.ZipCode)
	in.Address = normalization.TrimInputString(in.Address)
	in.Number = normalization.TrimInputString(in.Number)
	in.Complement = normalization.TrimInputString(in.Complement)
	in.Neighborhood = normalization.TrimInputString(in.Neighborhood)
	in.City = normalization.TrimInputString(in.City)
	in.State = normalization.TrimInputString(in.State)
}

// Validate checks every field and reports all failures at once; no field is
// persisted unless the whole set passes.
func (in *CreateShippingAddressInput) Validate() apierr.FieldErrors {
	fields := apierr.FieldErrors{}

	if in.Email == "" {
		fields["email"] = "Email inválido."
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "Email inválido."
	}
	if in.FullName == "" {
		fields["full_name"] = "Nome completo é obrigatório."
	}
	if !cpfPattern.MatchString(in.Cpf) {
		fields["cpf"] = "CPF inválido."
	}
	if !phonePattern.MatchString(in.Phone) {
		fields["phone"] = "Celular inválido."
	}
	if !zipPattern.MatchString(in.ZipCode) {
		fields["zip_code"] = "CEP inválido."
	}
	if in.Address == "" {
		fields["address"] = "Endereço é obrigatório."
	}
	if in.Number == "" {
		fields["number"] = "Número é obrigatório."
	}
	if in.Neighborhood == "" {
		fields["neighborhood"] = "Bairro é obrigatório."
	}
	if in.City == "" {
		fields["city"] = "Cidade é obrigatória."
	}
	if in.State == "" {
		fields["state"] = "Estado é obrigatório."
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
