package managephotos

// Step constants for the manage photos state machine
const (
	StepListPhotos = iota
	StepActionMenu
	StepViewDetails
	StepDeleteConfirm
	StepShareDone
	StepDone
)

// DefaultWidth is the default terminal width fallback
const DefaultWidth = 80
