package dto

// DashboardResponse aggregates record statistics for the dashboard view.
type DashboardResponse struct {
	Total         int            `json:"total"`
	AverageGPA    float64        `json:"avg_ipk"`
	PerDepartment map[string]int `json:"per_jurusan"`
	TopDepartment string         `json:"top_jurusan"`
}
