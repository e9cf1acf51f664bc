package entities

// Actor - тот, от чьего имени выполняется операция. Собирается из claims
// bearer-токена и явно передается в каждый вызов сервиса.
type Actor struct {
	ID     string
	Email  string
	Name   string
	Role   Role
	Status UserStatus
}

// IsActive - изменять данные может только подтвержденный аккаунт.
func (a Actor) IsActive() bool {
	return a.Status == UserApproved
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleBuyer   Role = "buyer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleBuyer:
		return true
	default:
		return false
	}
}

type UserStatus string

const (
	UserApproved  UserStatus = "approved"
	UserPending   UserStatus = "pending"
	UserSuspended UserStatus = "suspended"
)

// DefaultUserStatus используется, когда в токене нет статуса.
const DefaultUserStatus = UserApproved

func (s UserStatus) String() string {
	return string(s)
}
