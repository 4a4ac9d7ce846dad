package backlog

import "time"

// PayloadVersion is the current JSON interchange format version.
const PayloadVersion = "1.0.0"

// Payload is the JSON interchange file shape shared by the exporter and
// the import parser.
type Payload struct {
	Version     string          `json:"version"`
	ExportedAt  time.Time       `json:"exportedAt"`
	App         App             `json:"app"`
	Epics       []Epic          `json:"epics"`
	Features    []Feature       `json:"features"`
	UserStories []UserStory     `json:"userStories"`
	Tasks       []Task          `json:"tasks"`
	Metadata    PayloadMetadata `json:"metadata"`
}

// PayloadMetadata carries the exporter's entity counts. On import the
// counts are round-tripped verbatim, never recomputed from the arrays.
type PayloadMetadata struct {
	TotalEpics       int `json:"totalEpics"`
	TotalFeatures    int `json:"totalFeatures"`
	TotalUserStories int `json:"totalUserStories"`
	TotalTasks       int `json:"totalTasks"`
}
