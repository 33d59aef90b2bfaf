package model

// Department is the fixed organizational unit attached to users and documents.
type Department string

const (
	DepartmentRegistration Department = "Registration and Coordination"
	DepartmentHR           Department = "HR and Administration"
	DepartmentSupplyChain  Department = "Supply Chain Management"
	DepartmentICT          Department = "ICT and Compliance"
	DepartmentFinance      Department = "Finance and Accounts"
	DepartmentLegal        Department = "Legal"
	DepartmentResearch     Department = "CEO's Research and Policy"
)

// Departments lists every valid department value.
var Departments = []Department{
	DepartmentRegistration,
	DepartmentHR,
	DepartmentSupplyChain,
	DepartmentICT,
	DepartmentFinance,
	DepartmentLegal,
	DepartmentResearch,
}

// Valid reports whether d is one of the enumerated departments.
func (d Department) Valid() bool {
	for _, dep := range Departments {
		if d == dep {
			return true
		}
	}
	return false
}
