// Package listing turns a snapshot of worker profiles into the ordered,
// filtered view the home page renders. It is pure: the snapshot is fetched
// by the caller and nothing here touches the network or the database.
package listing

import (
	"sort"
	"strings"

	"github.com/gigworkers/gigworkers_be/internal/models"
)

type Filters struct {
	City       string // exact match, empty = all cities
	SkillQuery string // case-insensitive substring over skill names, empty = all
}

type Entry struct {
	Profile        models.WorkerProfile
	ContactEnabled bool
}

type Result struct {
	Entries []Entry
	Cities  []string // distinct, first-seen order, from the whole snapshot
	Skills  []string // distinct skill names, first-seen order, from the whole snapshot
}

// Compute ranks the snapshot, derives the filter facets, then applies the
// filters. Ranking happens before filtering so filtering never disturbs the
// relative order of the survivors.
func Compute(profiles []models.WorkerProfile, f Filters) Result {
	ranked := rank(profiles)

	res := Result{
		Cities: distinctCities(ranked),
		Skills: distinctSkills(ranked),
	}

	for _, p := range ranked {
		if !matches(p, f) {
			continue
		}
		res.Entries = append(res.Entries, Entry{
			Profile:        p,
			ContactEnabled: p.ContactEnabled(),
		})
	}
	return res
}

// rank orders active profiles first, then available ones, then by likes.
// The sort is stable so records that tie on all three keys keep their
// snapshot order.
func rank(profiles []models.WorkerProfile) []models.WorkerProfile {
	out := make([]models.WorkerProfile, len(profiles))
	copy(out, profiles)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		if a.Available != b.Available {
			return a.Available
		}
		return a.Likes > b.Likes
	})
	return out
}

func matches(p models.WorkerProfile, f Filters) bool {
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.SkillQuery != "" {
		q := strings.ToLower(f.SkillQuery)
		found := false
		for _, name := range p.SkillNames() {
			if strings.Contains(strings.ToLower(name), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func distinctCities(profiles []models.WorkerProfile) []string {
	seen := map[string]bool{}
	var cities []string
	for _, p := range profiles {
		if p.City == "" || seen[p.City] {
			continue
		}
		seen[p.City] = true
		cities = append(cities, p.City)
	}
	return cities
}

func distinctSkills(profiles []models.WorkerProfile) []string {
	seen := map[string]bool{}
	var skills []string
	for _, p := range profiles {
		for _, name := range p.SkillNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			skills = append(skills, name)
		}
	}
	return skills
}
