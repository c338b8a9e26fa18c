package entity

// Recruiter vincula una identidad de usuario con la única empresa que puede
// editar. El alta de recruiters es externa; aquí solo se consulta.
type Recruiter struct {
	ID        string // = id del usuario autenticado
	CompanyID string
}
