package action

import (
	"fmt"
	"strings"
)

// TokenPrefix starts every action drag token.
const TokenPrefix = "ACTION:"

// NewInstance is the index segment marking a drag that creates a new button
// instead of moving an existing one.
const NewInstance = "NEW"

// DragToken identifies an action, and its move/new-instance intent, during a
// drag-and-drop transfer between panel positions.
type DragToken struct {
	Kind  Kind
	IsNew bool
	// SourceIndex is the panel position of the dragged button. It is only
	// meaningful when IsNew is false.
	SourceIndex int
}

// Encode builds the wire form "ACTION:<name>:<NEW|decimal-index>".
func Encode(kind Kind, isNew bool, sourceIndex int) (string, error) {
	if !kind.Valid() {
		return "", &InvalidKindError{Kind: kind}
	}
	if isNew {
		return TokenPrefix + kindNames[kind] + ":" + NewInstance, nil
	}
	return fmt.Sprintf("%s%s:%d", TokenPrefix, kindNames[kind], sourceIndex), nil
}

// Decode parses a drag token. Anything that is not a well-formed token for a
// known action fails with UnknownTokenError.
func Decode(token string) (DragToken, error) {
	if !strings.HasPrefix(token, TokenPrefix) {
		return DragToken{}, &UnknownTokenError{Token: token, Reason: "missing ACTION: prefix"}
	}

	// Names never contain ':', so the first two segments after the prefix
	// are the name and the index; anything beyond is ignored.
	parts := strings.Split(token, ":")
	if len(parts) < 3 {
		return DragToken{}, &UnknownTokenError{Token: token, Reason: "missing name or index segment"}
	}

	kind, found := KindForName(parts[1])
	if !found {
		return DragToken{}, &UnknownTokenError{Token: token, Reason: "unknown action name " + parts[1]}
	}

	if parts[2] == NewInstance {
		return DragToken{Kind: kind, IsNew: true}, nil
	}

	return DragToken{Kind: kind, SourceIndex: parseIndex(parts[2])}, nil
}

// parseIndex mimics strtol: an optional sign followed by the longest numeric
// prefix, anything else parses as 0. The lenient fallback is long-standing
// drop-target behavior and is kept as is.
func parseIndex(s string) int {
	i, sign := 0, 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	value := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		value = value*10 + int(s[i]-'0')
	}
	return sign * value
}
