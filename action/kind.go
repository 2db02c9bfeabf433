package action

import "strings"

// Kind is one of the fixed system actions a panel button can represent.
// None is a sentinel meaning "unset": lookups on it are invalid.
type Kind int

const (
	None Kind = iota
	Lock
	Logout
	Run
	Search
	ForceQuit
	ConnectServer
	Shutdown

	lastKind
)

// Keep order in sync with the Kind constants.
var kindNames = [lastKind]string{
	None:          "none",
	Lock:          "lock",
	Logout:        "logout",
	Run:           "run",
	Search:        "search",
	ForceQuit:     "force-quit",
	ConnectServer: "connect-server",
	Shutdown:      "shutdown",
}

// Valid reports whether k names a concrete action.
func (k Kind) Valid() bool {
	return k > None && k < lastKind
}

func (k Kind) String() string {
	if k >= None && k < lastKind {
		return kindNames[k]
	}
	return "invalid"
}

// KindForName maps a stable action name back to its Kind, case-insensitively.
// Only concrete actions match: "none" and unknown names yield found=false.
func KindForName(name string) (Kind, bool) {
	for k := None + 1; k < lastKind; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, true
		}
	}
	return None, false
}
