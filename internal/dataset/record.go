// Package dataset loads the public salary CSV into memory.
//
// The remote fetch happens once per process: a single-entry cache memoizes the
// decoded table and is only dropped by an explicit Invalidate (e.g. when the
// local source file changes).
package dataset

// Record is one raw salary observation, as published in the source CSV.
type Record struct {
	WorkYear          int     `csv:"work_year"`
	ExperienceLevel   string  `csv:"experience_level"`
	EmploymentType    string  `csv:"employment_type"`
	JobTitle          string  `csv:"job_title"`
	Salary            float64 `csv:"salary"`
	SalaryCurrency    string  `csv:"salary_currency"`
	SalaryInUSD       float64 `csv:"salary_in_usd"`
	EmployeeResidence string  `csv:"employee_residence"`
	RemoteRatio       int     `csv:"remote_ratio"`
	CompanyLocation   string  `csv:"company_location"`
	CompanySize       string  `csv:"company_size"`
}

// DefaultURL is the published location of the salary dataset.
const DefaultURL = "https://raw.githubusercontent.com/guilhermeonrails/data-jobs/refs/heads/main/salaries.csv"

// Clean drops rows with missing required values, mirroring the upstream
// notebook's dropna step. The year and USD salary must be present for a row
// to be usable by the aggregations.
func Clean(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.WorkYear == 0 || r.SalaryInUSD == 0 {
			continue
		}
		if r.JobTitle == "" || r.ExperienceLevel == "" || r.EmploymentType == "" || r.CompanySize == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
