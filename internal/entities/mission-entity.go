package entities

import "time"

const (
	MissionStatusOpen       = "open"
	MissionStatusAssigned   = "assigned"
	MissionStatusInProgress = "in_progress"
	MissionStatusCompleted  = "completed"
)

type Mission struct {
	ID          uint64
	ClientID    uint64
	AssigneeID  *uint64
	Title       string
	Description string
	Budget      float64
	Deadline    *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// missionTransitions holds the only legal status moves. Everything else is
// rejected with ErrInvalidTransition at the service layer.
var missionTransitions = map[string]string{
	MissionStatusOpen:       MissionStatusAssigned,
	MissionStatusAssigned:   MissionStatusInProgress,
	MissionStatusInProgress: MissionStatusCompleted,
}

func CanTransitionMission(from, to string) bool {
	next, ok := missionTransitions[from]
	return ok && next == to
}
