package domain

import "time"

// DepartmentShare is one department's death count and its percentage of the
// national total.
type DepartmentShare struct {
	Key    string
	Deaths int
	Share  float64
}

// Centroid is the lon/lat marker position for a highlighted department.
type Centroid struct {
	Lon float64
	Lat float64
}

// SelectedDepartment extends a share with the marker position consumers use
// to highlight the current selection on the map.
type SelectedDepartment struct {
	DepartmentShare
	Centroid *Centroid
}

// Summary carries the figures the dashboard's stat cards display: national
// total, per-department shares, the worst-affected department, and the
// currently selected one.
type Summary struct {
	RunID       string
	GeneratedAt time.Time
	JoinMode    JoinMode
	Degraded    bool
	TotalDeaths int
	Departments []DepartmentShare
	Max         DepartmentShare
	Selected    *SelectedDepartment
}
