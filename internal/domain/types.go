package domain

type (
	UserId    = int64
	BoardId   = int64
	PostId    = int64
	CommentId = int64
	Email     = string
	Password  = string
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw role value to a known Role. Unknown values fall
// back to USER; the second return tells the caller whether the value was
// recognized.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleUser, RoleAdmin:
		return Role(raw), true
	default:
		return RoleUser, false
	}
}

// Identity is the authenticated caller, derived per request from the
// bearer credential. A zero Identity means anonymous.
type Identity struct {
	UserId UserId
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Status is the lifecycle state of user-visible content. The only
// transition is ACTIVE -> DELETED; rows are never removed.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

func (s Status) Deleted() bool {
	return s == StatusDeleted
}

type PageRequest struct {
	Number    int
	Size      int
	SortBy    string
	Direction string
}
