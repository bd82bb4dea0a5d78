package editor

import "fmt"

// CommandKind identifies a Command variant.
type CommandKind uint8

const (
	KindInsertChar CommandKind = iota + 1
	KindDeleteChar
	KindAutoComplete
	KindValidate
	KindExit
)

func (k CommandKind) String() string {
	switch k {
	case KindInsertChar:
		return "InsertChar"
	case KindDeleteChar:
		return "DeleteChar"
	case KindAutoComplete:
		return "AutoComplete"
	case KindValidate:
		return "Validate"
	case KindExit:
		return "Exit"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// Command is one editor mutation request. Char is set only for
// KindInsertChar.
type Command struct {
	Kind CommandKind
	Char rune
}

// InsertChar returns the command inserting c at the cursor.
func InsertChar(c rune) Command { return Command{Kind: KindInsertChar, Char: c} }

var (
	DeleteChar   = Command{Kind: KindDeleteChar}
	AutoComplete = Command{Kind: KindAutoComplete}
	Validate     = Command{Kind: KindValidate}
	Exit         = Command{Kind: KindExit}
)

func (c Command) String() string {
	if c.Kind == KindInsertChar {
		return fmt.Sprintf("InsertChar(%q)", c.Char)
	}
	return c.Kind.String()
}

// Intent is the follow-up an applied command asks of its caller.
type Intent uint8

const (
	IntentNone Intent = iota
	// IntentLeave asks the focus owner to move focus away from the editor.
	IntentLeave
)
