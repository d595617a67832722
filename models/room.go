package models

import "time"

// Room is a shared partition of schedule data. The code is the external
// identifier handed out to participants; it never changes after creation.
type Room struct {
	ID        string    `json:"id" bson:"id"`
	Code      string    `json:"code" bson:"code"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// RoomVisit is one entry in a device's recently-visited-rooms list. The list
// is a convenience cache, not authoritative room data.
type RoomVisit struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	LastVisited time.Time `json:"lastVisited"`
}

// ScheduleRecord is the persisted unit of schedule storage: one document per
// (week start, room code) holding the full week. Day-level reads and writes
// are projections over this blob.
type ScheduleRecord struct {
	RoomCode  string         `json:"roomCode" bson:"roomCode"`
	WeekStart string         `json:"weekStart" bson:"weekStart"`
	Schedule  WeeklySchedule `json:"schedule" bson:"schedule"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}
