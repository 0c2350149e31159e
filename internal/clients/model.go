package clients

import (
	"fmt"
	"strconv"

	"github.com/negociacion/admin/internal/apiclient"
)

// Form field names as sent to the API.
const (
	FieldName             = "nombre"
	FieldEconomicActivity = "actividad_economica"
	FieldAddress          = "direccion"
	FieldLocality         = "locality"
	FieldPhone            = "telefono"
	FieldEmail            = "email"
	FieldMemberCount      = "numeroMiembros"
	FieldTestimonial      = "testimonio"

	// AttachmentField is the multipart field carrying the logo file.
	AttachmentField = "logo"
)

// Client is an organization listed on the public site.
type Client struct {
	ID               int64  `json:"id"`
	Name             string `json:"nombre"`
	EconomicActivity string `json:"actividad_economica"`
	Address          string `json:"direccion"`
	Locality         string `json:"locality"`
	Phone            string `json:"telefono"`
	Email            string `json:"email"`
	Logo             string `json:"logo"`
	MemberCount      int    `json:"numeroMiembros"`
	Testimonial      string `json:"testimonio"`
}

// Form holds the editable fields of a Client.
type Form struct {
	Name             string
	EconomicActivity string
	Address          string
	Locality         string
	Phone            string
	Email            string
	MemberCount      int
	Testimonial      string
}

// FormOf copies the scalar fields of c.
func FormOf(c Client) Form {
	return Form{
		Name:             c.Name,
		EconomicActivity: c.EconomicActivity,
		Address:          c.Address,
		Locality:         c.Locality,
		Phone:            c.Phone,
		Email:            c.Email,
		MemberCount:      c.MemberCount,
		Testimonial:      c.Testimonial,
	}
}

// Fields renders the form as multipart fields.
func (f Form) Fields() []apiclient.Field {
	return []apiclient.Field{
		{Name: FieldName, Value: f.Name},
		{Name: FieldEconomicActivity, Value: f.EconomicActivity},
		{Name: FieldAddress, Value: f.Address},
		{Name: FieldLocality, Value: f.Locality},
		{Name: FieldPhone, Value: f.Phone},
		{Name: FieldEmail, Value: f.Email},
		{Name: FieldMemberCount, Value: strconv.Itoa(f.MemberCount)},
		{Name: FieldTestimonial, Value: f.Testimonial},
	}
}

// Set assigns a field by its wire name. The member count is parsed as an
// integer; an empty value resets it to zero.
func (f *Form) Set(name, value string) error {
	switch name {
	case FieldName:
		f.Name = value
	case FieldEconomicActivity:
		f.EconomicActivity = value
	case FieldAddress:
		f.Address = value
	case FieldLocality:
		f.Locality = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldMemberCount:
		if value == "" {
			f.MemberCount = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", FieldMemberCount, err)
		}
		f.MemberCount = n
	case FieldTestimonial:
		f.Testimonial = value
	default:
		return fmt.Errorf("unknown client field %q", name)
	}
	return nil
}
