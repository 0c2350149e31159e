package team

import (
	"fmt"

	"github.com/negociacion/admin/internal/apiclient"
)

// Form field names as sent to the API.
const (
	FieldFirstName  = "nombre"
	FieldLastName   = "apellido"
	FieldEmail      = "email"
	FieldProfession = "profesion"
	FieldExperience = "experiencia"
	FieldStatus     = "estado"

	// AttachmentField is the multipart field carrying the member photo.
	AttachmentField = "foto"
)

// Member represents a person on the team page.
type Member struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Profession string `json:"profesion"`
	Experience string `json:"experiencia"`
	Photo      string `json:"foto"`
	Status     string `json:"estado"`
}

// FullName returns "<first> <last>".
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Form holds the editable fields of a Member.
type Form struct {
	FirstName  string
	LastName   string
	Email      string
	Profession string
	Experience string
	Status     string
}

// FormOf copies the scalar fields of m.
func FormOf(m Member) Form {
	return Form{
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Profession: m.Profession,
		Experience: m.Experience,
		Status:     m.Status,
	}
}

// Fields renders the form as multipart fields.
func (f Form) Fields() []apiclient.Field {
	return []apiclient.Field{
		{Name: FieldFirstName, Value: f.FirstName},
		{Name: FieldLastName, Value: f.LastName},
		{Name: FieldEmail, Value: f.Email},
		{Name: FieldProfession, Value: f.Profession},
		{Name: FieldExperience, Value: f.Experience},
		{Name: FieldStatus, Value: f.Status},
	}
}

// Set assigns a field by its wire name.
func (f *Form) Set(name, value string) error {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldProfession:
		f.Profession = value
	case FieldExperience:
		f.Experience = value
	case FieldStatus:
		f.Status = value
	default:
		return fmt.Errorf("unknown team member field %q", name)
	}
	return nil
}
