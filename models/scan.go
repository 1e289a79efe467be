package models

import (
	"database/sql"
	"time"
)

// Scan is one completed (or in-progress) run of the scanner over a tree.
type Scan struct {
	ID            int64        `json:"id"`
	UUID          string       `json:"uuid"`
	RootPath      string       `json:"root_path"`
	StartedAt     time.Time    `json:"started_at"`
	CompletedAt   sql.NullTime `json:"completed_at"`
	FilesScanned  int64        `json:"files_scanned"`
	TotalFindings int64        `json:"total_findings"`
}

// Finding is one (kind, comment) association as stored in the database.
// KindRank is the first-seen rank of the kind within its scan; ordering by
// (kind_rank, id) reproduces the original report order exactly.
type Finding struct {
	ID          int64     `json:"id"`
	ScanID      int64     `json:"scan_id"`
	Kind        string    `json:"kind"`
	KindRank    int64     `json:"kind_rank"`
	FilePath    string    `json:"file_path"`
	StartLine   int64     `json:"start_line"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// KindCount is a per-kind findings count for one scan.
type KindCount struct {
	Kind     string `json:"kind"`
	KindRank int64  `json:"kind_rank"`
	Count    int64  `json:"count"`
}
