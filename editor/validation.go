package editor

// Validation is the query's structural validity as of the last Validate.
type Validation uint8

const (
	// Pending means the text changed since the last check.
	Pending Validation = iota
	Valid
	Invalid
)

func (v Validation) String() string {
	switch v {
	case Pending:
		return "pending"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}
