package stakepool

// StakeStatus describes the lifecycle state of a validator's stake
// accounts within the pool.
type StakeStatus uint8

const (
	StakeStatusActive StakeStatus = iota
	StakeStatusDeactivatingTransient
	StakeStatusReadyForRemoval
)

func (s StakeStatus) String() string {
	switch s {
	case StakeStatusActive:
		return "active"
	case StakeStatusDeactivatingTransient:
		return "deactivating_transient"
	case StakeStatusReadyForRemoval:
		return "ready_for_removal"
	}
	return "unknown"
}
