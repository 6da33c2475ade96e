package types

// WorkEntry is a single work-history item. Entries are edited as a whole
// list: the API exposes only a whole-list replace, no per-entry update.
type WorkEntry struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// EduEntry is a single education item, edited the same bulk-replace way.
type EduEntry struct {
	Institution    string `json:"institution" validate:"required"`
	Degree         string `json:"degree" validate:"required"`
	FieldOfStudy   string `json:"fieldOfStudy,omitempty"`
	GraduationYear int    `json:"graduationYear" validate:"required"`
}

// ResumeRecord is the stored resume metadata plus its editable sub-lists.
type ResumeRecord struct {
	FileName    string      `json:"fileName,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
	WorkHistory []WorkEntry `json:"workHistory,omitempty"`
	Education   []EduEntry  `json:"education,omitempty"`
}

// ResumeResponse is the envelope returned by GET /user/resume.
type ResumeResponse struct {
	Success bool          `json:"success"`
	Resume  *ResumeRecord `json:"resume"`
	Error   string        `json:"error,omitempty"`
}
