package dashboard

// Summary is either an AdminSummary or a PersonalSummary.
type Summary interface {
	// IsGlobal reports whether the counts cover the whole organization.
	IsGlobal() bool
	Totals() Counts
}

// Counts are the four dashboard figures.
type Counts struct {
	LoggedInUsers        int64 `json:"loggedInUsers"`
	LeavesRequestedToday int64 `json:"leavesRequestedToday"`
	PendingApprovals     int64 `json:"pendingApprovals"`
	Departments          int64 `json:"departments"`
}

// AdminSummary holds organization-wide counts.
type AdminSummary struct {
	Global bool `json:"summary"`
	Counts
}

func NewAdminSummary(c Counts) AdminSummary {
	return AdminSummary{Global: true, Counts: c}
}

func (s AdminSummary) IsGlobal() bool { return true }
func (s AdminSummary) Totals() Counts { return s.Counts }

// PersonalSummary holds one user's counts. Departments is 1 when the user has
// a department and 0 otherwise.
type PersonalSummary struct {
	Global   bool   `json:"summary"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Counts
}

func NewPersonalSummary(userID int64, userName string, c Counts) PersonalSummary {
	return PersonalSummary{UserID: userID, UserName: userName, Counts: c}
}

func (s PersonalSummary) IsGlobal() bool { return false }
func (s PersonalSummary) Totals() Counts { return s.Counts }
