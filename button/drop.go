package button

import "github.com/b0bbywan/go-panel-actions/action"

// DropResult is the decoded intent of an action token dropped on a panel
// position.
type DropResult struct {
	Kind action.Kind
	// RemoveOld is set when the drag moved an existing button: the source
	// at OldIndex must be removed after the new button is created.
	RemoveOld bool
	OldIndex  int
}

// ParseDrop decodes a dropped drag token. A failure means the drop is not a
// panel action and should be ignored by the target.
func ParseDrop(token string) (DropResult, error) {
	decoded, err := action.Decode(token)
	if err != nil {
		return DropResult{}, err
	}
	return DropResult{
		Kind:      decoded.Kind,
		RemoveOld: !decoded.IsNew,
		OldIndex:  decoded.SourceIndex,
	}, nil
}
