package resume

import "encoding/json"

const DocumentKey = "resume"

type Resume struct {
	Name           string       `json:"name"`
	Title          string       `json:"title"`
	Summary        string       `json:"summary"`
	Contact        Contact      `json:"contact"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
}

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
}

type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// ContactField is one labelled contact line of the printed resume.
type ContactField struct {
	Label string
	Value string
}

// Fields lists the contact block in display order.
func (c Contact) Fields() []ContactField {
	return []ContactField{
		{Label: "Email", Value: c.Email},
		{Label: "Phone", Value: c.Phone},
		{Label: "Location", Value: c.Location},
		{Label: "Website", Value: c.Website},
		{Label: "Linkedin", Value: c.Linkedin},
		{Label: "Github", Value: c.Github},
	}
}

// normalize replaces nil lists with empty ones so stored documents always
// carry arrays.
func (r *Resume) normalize() {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
}

type SaveRequest struct {
	Password string          `json:"password"`
	Resume   json.RawMessage `json:"resume"`
}
