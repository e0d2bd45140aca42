package projects

import (
	"encoding/json"
	"strings"

	"portfolio-backend/internal/records"
)

const (
	CollectionKey = "projects"
	DefaultIcon   = "💻"
)

type Project struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
	Live        string `json:"live"`
	Github      string `json:"github"`
	Featured    bool   `json:"featured"`
	Visible     bool   `json:"visible"`
	Order       int    `json:"order"`
}

// TechList splits the comma separated technology field.
func (p Project) TechList() []string {
	parts := strings.Split(p.Tech, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// UpsertRequest is the body of POST and PUT. Nil fields are absent: create
// fills them with defaults, update keeps the stored value.
type UpsertRequest struct {
	ID          string              `json:"id" validate:"max=128"`
	Icon        *string             `json:"icon" validate:"omitempty,max=16"`
	Title       *string             `json:"title" validate:"omitempty,max=200"`
	Description *string             `json:"description" validate:"omitempty,max=5000"`
	Tech        *TechField          `json:"tech"`
	Live        *string             `json:"live" validate:"omitempty,max=2048"`
	Github      *string             `json:"github" validate:"omitempty,max=2048"`
	Featured    *bool               `json:"featured"`
	Visible     *bool               `json:"visible"`
	Order       records.OptionalInt `json:"order"`
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
}

// TechField accepts either the stored comma separated string or a JSON list
// of technologies.
type TechField string

func (t *TechField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TechField(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	cleaned := make([]string, 0, len(list))
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	*t = TechField(strings.Join(cleaned, ", "))
	return nil
}
