package masterdata

// LookupItem is one row of any mst_* lookup table, normalized to the shape
// the profile form consumes.
type LookupItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Lookups bundles every active lookup list the employee profile form needs
// in a single response.
type Lookups struct {
	Companies          []LookupItem `json:"companies"`
	Departments        []LookupItem `json:"departments"`
	Positions          []LookupItem `json:"positions"`
	JobLevels          []LookupItem `json:"jobLevels"`
	EmploymentStatuses []LookupItem `json:"employmentStatuses"`
	EducationLevels    []LookupItem `json:"educationLevels"`
	Religions          []LookupItem `json:"religions"`
	Banks              []LookupItem `json:"banks"`
}
