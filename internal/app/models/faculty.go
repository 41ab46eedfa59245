package models

import "time"

// Faculty is one entry of the administrator-maintained reference catalog.
type Faculty struct {
	Name        string    `json:"name"`
	Alias       string    `json:"alias"`
	Departments []string  `json:"departments"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Catalog is the single basic-info reference document: the whole faculty map
// keyed by alias plus aggregate counts, overwritten wholesale on every setup
// save.
type Catalog struct {
	Faculties        map[string]Faculty `json:"faculties"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	TotalFaculties   int                `json:"totalFaculties"`
	TotalDepartments int                `json:"totalDepartments"`
}

// ResolveAlias translates a faculty display name to its alias. If the name is
// not in the catalog the raw input is returned as the alias (fallback, not an
// error).
func (c *Catalog) ResolveAlias(facultyName string) string {
	if c == nil {
		return facultyName
	}
	for _, f := range c.Faculties {
		if f.Name == facultyName {
			return f.Alias
		}
	}
	return facultyName
}

// FacultyByName returns the catalog entry whose display name matches.
func (c *Catalog) FacultyByName(facultyName string) (Faculty, bool) {
	if c == nil {
		return Faculty{}, false
	}
	for _, f := range c.Faculties {
		if f.Name == facultyName {
			return f, true
		}
	}
	return Faculty{}, false
}

// HasDepartment reports whether department is a member of the faculty's
// department list.
func (f Faculty) HasDepartment(department string) bool {
	for _, d := range f.Departments {
		if d == department {
			return true
		}
	}
	return false
}
