package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionMission(t *testing.T) {
	allowed := [][2]string{
		{MissionStatusOpen, MissionStatusAssigned},
		{MissionStatusAssigned, MissionStatusInProgress},
		{MissionStatusInProgress, MissionStatusCompleted},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransitionMission(pair[0], pair[1]), "%s -> %s should be allowed", pair[0], pair[1])
	}

	denied := [][2]string{
		{MissionStatusOpen, MissionStatusCompleted},
		{MissionStatusOpen, MissionStatusInProgress},
		{MissionStatusAssigned, MissionStatusOpen},
		{MissionStatusCompleted, MissionStatusOpen},
		{MissionStatusCompleted, MissionStatusInProgress},
		{"bogus", MissionStatusAssigned},
	}
	for _, pair := range denied {
		assert.False(t, CanTransitionMission(pair[0], pair[1]), "%s -> %s should be denied", pair[0], pair[1])
	}
}

func TestIsValidUploadStatus(t *testing.T) {
	assert.True(t, IsValidUploadStatus(UploadStatusPending))
	assert.True(t, IsValidUploadStatus(UploadStatusApproved))
	assert.True(t, IsValidUploadStatus(UploadStatusRejected))
	assert.False(t, IsValidUploadStatus("archived"))
	assert.False(t, IsValidUploadStatus(""))
}
