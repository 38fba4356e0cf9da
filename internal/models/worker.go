package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Service is one offered service with a price estimate. The estimate arrives
// either as a JSON number or a string depending on which form wrote it; it is
// normalized to a string on decode.
type Service struct {
	Name     string `json:"name"`
	Estimate string `json:"estimate"`
}

func (s *Service) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name     string          `json:"name"`
		Estimate json.RawMessage `json:"estimate"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Name = raw.Name
	s.Estimate = ""
	if len(raw.Estimate) > 0 {
		var str string
		if err := json.Unmarshal(raw.Estimate, &str); err == nil {
			s.Estimate = str
		} else {
			var num json.Number
			if err := json.Unmarshal(raw.Estimate, &num); err == nil {
				s.Estimate = num.String()
			}
		}
	}
	return nil
}

// Skill is the canonical grouped shape: a skill name plus the services
// offered under it. Older profiles stored skills as bare strings; the decoder
// accepts both so everything past the model sees one shape.
type Skill struct {
	Skill    string    `json:"skill"`
	Services []Service `json:"services,omitempty"`
}

func (sk *Skill) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		sk.Skill = name
		sk.Services = nil
		return nil
	}
	type grouped Skill
	var g grouped
	if err := json.Unmarshal(b, &g); err != nil {
		return err
	}
	*sk = Skill(g)
	return nil
}

// internal/models/worker.go
type WorkerProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string `gorm:"type:varchar(120)" json:"name"`
	Area      string `gorm:"type:varchar(120)" json:"area"`
	City      string `gorm:"type:varchar(120);index" json:"city"`
	Bio       string `gorm:"type:text" json:"bio"`
	Portfolio string `gorm:"type:text" json:"portfolio"`
	Whatsapp  string `gorm:"type:varchar(30)" json:"whatsapp"`

	Available bool `gorm:"default:false" json:"available"`
	IsActive  bool `gorm:"default:false" json:"is_active"`

	// Document-shaped fields, kept as JSON for flexibility
	Skills   datatypes.JSON `json:"skills"`   // [{skill, services:[{name, estimate}]}]
	Services datatypes.JSON `json:"services"` // flat [{name, estimate}]
	Reviews  datatypes.JSON `json:"reviews"`  // []string, newest first

	Likes int `gorm:"default:0" json:"likes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillList decodes the skills column. Malformed or missing data comes back
// as an empty list, never an error.
func (w *WorkerProfile) SkillList() []Skill {
	var skills []Skill
	if len(w.Skills) == 0 {
		return nil
	}
	if err := json.Unmarshal(w.Skills, &skills); err != nil {
		return nil
	}
	return skills
}

func (w *WorkerProfile) SkillNames() []string {
	skills := w.SkillList()
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Skill != "" {
			names = append(names, s.Skill)
		}
	}
	return names
}

func (w *WorkerProfile) ServiceList() []Service {
	var services []Service
	if len(w.Services) == 0 {
		return nil
	}
	if err := json.Unmarshal(w.Services, &services); err != nil {
		return nil
	}
	return services
}

func (w *WorkerProfile) ReviewList() []string {
	var reviews []string
	if len(w.Reviews) == 0 {
		return nil
	}
	if err := json.Unmarshal(w.Reviews, &reviews); err != nil {
		return nil
	}
	return reviews
}

// ContactEnabled: a worker can be contacted (WhatsApp, inquire) only while
// the profile is published AND the worker is accepting work.
func (w *WorkerProfile) ContactEnabled() bool {
	return w.IsActive && w.Available
}
