package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"gorm.io/datatypes"
)

func TestSkillDecodeAcceptsBothShapes(t *testing.T) {
	raw := `["Electrician", {"skill": "Plumber", "services": [{"name": "Tap Fixing", "estimate": 500}]}]`

	var skills []Skill
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	want := []Skill{
		{Skill: "Electrician"},
		{Skill: "Plumber", Services: []Service{{Name: "Tap Fixing", Estimate: "500"}}},
	}
	if !reflect.DeepEqual(skills, want) {
		t.Fatalf("expected %+v got %+v", want, skills)
	}
}

func TestServiceEstimateNumberOrString(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"number", `{"name": "Wiring", "estimate": 1500}`, "1500"},
		{"string", `{"name": "Wiring", "estimate": "1500"}`, "1500"},
		{"missing", `{"name": "Wiring"}`, ""},
		{"null", `{"name": "Wiring", "estimate": null}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Service
			if err := json.Unmarshal([]byte(tc.raw), &s); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if s.Estimate != tc.want {
				t.Fatalf("expected estimate %q got %q", tc.want, s.Estimate)
			}
		})
	}
}

func TestWorkerProfileDecodesDefensively(t *testing.T) {
	w := WorkerProfile{
		Skills:   datatypes.JSON(`garbage`),
		Services: datatypes.JSON(`{"also": "garbage"}`),
		Reviews:  nil,
	}

	if got := w.SkillList(); got != nil {
		t.Fatalf("expected nil skills for malformed column, got %v", got)
	}
	if got := w.ServiceList(); got != nil {
		t.Fatalf("expected nil services for malformed column, got %v", got)
	}
	if got := w.ReviewList(); got != nil {
		t.Fatalf("expected nil reviews for empty column, got %v", got)
	}
}

func TestSkillNamesSkipEmpty(t *testing.T) {
	w := WorkerProfile{
		Skills: datatypes.JSON(`[{"skill": "Plumber"}, {"skill": ""}, "Carpenter"]`),
	}

	want := []string{"Plumber", "Carpenter"}
	if got := w.SkillNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestContactEnabled(t *testing.T) {
	w := WorkerProfile{IsActive: true, Available: true}
	if !w.ContactEnabled() {
		t.Fatal("expected contactable when active and available")
	}
	w.IsActive = false
	if w.ContactEnabled() {
		t.Fatal("inactive profile must never be contactable")
	}
}
