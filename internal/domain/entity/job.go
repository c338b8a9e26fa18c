package entity

import "time"

// Job vacante publicada de una empresa. Solo lectura desde este sistema:
// las vacantes se crean y mantienen en otro lugar.
type Job struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"-"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	JobType    string    `json:"job_type"`
	Department string    `json:"department"`
	Level      string    `json:"level"`
	WorkMode   string    `json:"work_mode"`
	SalaryText string    `json:"salary_text"`
	Slug       string    `json:"slug"`
	PostedAt   time.Time `json:"posted_at"`
}
