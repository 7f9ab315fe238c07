package domain

import "time"

// BoardType fixes the capability set of a board at creation time.
type BoardType string

const (
	BoardTypeGeneral BoardType = "GENERAL" // comments and reports allowed
	BoardTypeNotice  BoardType = "NOTICE"  // announcements, no comments or reports
	BoardTypeQna     BoardType = "QNA"     // comments allowed, reports disabled
)

func ParseBoardType(raw string) (BoardType, bool) {
	switch BoardType(raw) {
	case BoardTypeGeneral, BoardTypeNotice, BoardTypeQna:
		return BoardType(raw), true
	default:
		return "", false
	}
}

// Capabilities gate which child operations a board's posts permit.
// They are derived from the board type once and stored with the board.
type Capabilities struct {
	AllowComments bool
	AllowReports  bool
}

func (t BoardType) Capabilities() Capabilities {
	switch t {
	case BoardTypeNotice:
		return Capabilities{AllowComments: false, AllowReports: false}
	case BoardTypeQna:
		return Capabilities{AllowComments: true, AllowReports: false}
	default:
		return Capabilities{AllowComments: true, AllowReports: true}
	}
}

type Board struct {
	Id           BoardId
	Title        string
	Description  string
	Type         BoardType
	Capabilities Capabilities
	Status       Status
	CreatedAt    time.Time
}

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Title       string
	Description string
	Type        BoardType
}

// Nil fields are "leave as is", not "set empty".
type BoardUpdateData struct {
	Title       *string
	Description *string
}
