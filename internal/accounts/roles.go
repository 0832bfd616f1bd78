package accounts

type Role string

const (
	// RoleBuyer may purchase tickets and list their own.
	RoleBuyer Role = "BUYER"
	// RoleOperator may additionally publish concerts.
	RoleOperator Role = "OPERATOR"
)

func (r Role) String() string {
	return string(r)
}
