package entities

// Principal is the authenticated caller as asserted by the upstream identity
// provider. The service trusts this input and only checks capabilities.
type Principal struct {
	UserID   int64
	UserType UserType
}

type UserType string

const (
	WarehouseOperator UserType = "WAREHOUSE_OPERATOR"
	FleetOperator     UserType = "FLEET_OPERATOR"
)

func (u UserType) String() string {
	return string(u)
}

func IsValidUserType(userType string) bool {
	switch UserType(userType) {
	case WarehouseOperator, FleetOperator:
		return true
	default:
		return false
	}
}
