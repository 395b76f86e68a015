package models

// Employee is the read model returned by the upstream and by this service.
// JSON names follow the upstream's wire contract.
type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"employee_name"`
	Salary int    `json:"employee_salary"`
	Age    int    `json:"employee_age"`
	Title  string `json:"employee_title"`
	Email  string `json:"employee_email"`
}

// Input is the write model accepted by POST /api/v1/employees and forwarded
// upstream as-is. Salary and Age are pointers so an omitted field can be told
// apart from zero.
type Input struct {
	Name   string `json:"name"`
	Salary *int   `json:"salary"`
	Age    *int   `json:"age"`
	Title  string `json:"title"`
}

// Envelope is the upstream response wrapper. Status is informational only.
type Envelope[T any] struct {
	Data   *T     `json:"data"`
	Status string `json:"status"`
}

// DeleteByName is the body of the upstream's name-keyed DELETE.
type DeleteByName struct {
	Name string `json:"name"`
}
