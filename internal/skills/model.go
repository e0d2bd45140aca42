package skills

import "portfolio-backend/internal/records"

const (
	CollectionKey      = "skills"
	DefaultIcon        = "🛠️"
	DefaultCategory    = "General"
	DefaultProficiency = "Intermediate"
)

// Categories and Proficiencies are the values offered by the admin form. The
// store accepts any string.
var (
	Categories    = []string{"Frontend", "Backend & Tools", "Certifications", "Other"}
	Proficiencies = []string{"Beginner", "Intermediate", "Proficient", "Advanced", "Expert"}
)

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
	Level       int    `json:"level"`
	Order       int    `json:"order"`
	Visible     bool   `json:"visible"`
}

type UpsertRequest struct {
	ID          string              `json:"id" validate:"max=128"`
	Name        *string             `json:"name" validate:"omitempty,max=120"`
	Icon        *string             `json:"icon" validate:"omitempty,max=16"`
	Category    *string             `json:"category" validate:"omitempty,max=60"`
	Proficiency *string             `json:"proficiency" validate:"omitempty,max=60"`
	Level       *int                `json:"level" validate:"omitempty,gte=0,lte=100"`
	Order       records.OptionalInt `json:"order"`
	Visible     *bool               `json:"visible"`
}

type DeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

type ReorderRequest struct {
	ID        string `json:"id" validate:"required"`
	Direction int    `json:"direction" validate:"direction"`
}

type ListFilter struct {
	VisibleOnly bool
	Category    string
}
