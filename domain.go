package o2sched

// Domain selects one of the two time references a message can be scheduled
// against.
type Domain int

const (
	// Local is driven by the unsynchronized local clock and is always active.
	Local Domain = iota
	// Global is driven by the synchronized clock and is active only after
	// EnableGlobal.
	Global
)

func (d Domain) String() string {
	switch d {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}
