package dto

// FacultyInput describes one faculty in a catalog save request.
type FacultyInput struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Alias       string   `json:"alias" binding:"required,max=20"`
	Departments []string `json:"departments" binding:"required,min=1"`
}

// CatalogUpdateRequest replaces the faculty and department catalog
// wholesale. Keys are faculty aliases.
type CatalogUpdateRequest struct {
	Faculties map[string]FacultyInput `json:"faculties" binding:"required,min=1"`
}
