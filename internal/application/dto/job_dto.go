package dto

import "github.com/whitecarrot/careers-api/internal/domain/entity"

// JobFilterRequest query params del listado público de vacantes.
type JobFilterRequest struct {
	Location string `query:"location"`
	JobType  string `query:"jobType"`
	Query    string `query:"q"`
}

// JobsEnvelope envoltorio de éxito: {"jobs": [...]}.
type JobsEnvelope struct {
	Jobs []entity.Job `json:"jobs"`
}

// ToJobsEnvelope proyecta la lista manteniendo el orden del repositorio.
func ToJobsEnvelope(jobs []*entity.Job) JobsEnvelope {
	items := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, *j)
	}
	return JobsEnvelope{Jobs: items}
}
