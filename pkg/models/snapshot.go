package models

// Snapshot is the unit of persistence: the full record table plus the
// notification and streak state, saved and reloaded atomically.
type Snapshot struct {
	Records      map[string]LearningRecord `json:"records"`
	Notification NotificationState         `json:"notification"`
	Streak       StreakState               `json:"streak"`
	Intro        IntroState                `json:"intro"`
}

// ExportData mirrors the snapshot plus deck metadata for portability
type ExportData struct {
	Entries      []WordEntry               `json:"vocabulary"`
	Records      map[string]LearningRecord `json:"progress"`
	Stats        SessionStats              `json:"statistics"`
	Notification NotificationState         `json:"notification"`
}
