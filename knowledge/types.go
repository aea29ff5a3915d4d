package knowledge

type Status string

const (
	StatusNotStarted = Status("Not started")
	StatusInProgress = Status("In progress")
	StatusComplete   = Status("Complete")
)

type ReviewStatus string

const (
	ReviewPending  = ReviewStatus("Pending")
	ReviewApproved = ReviewStatus("Approved")
	ReviewRejected = ReviewStatus("Rejected")
)

// CellTier is the presentation tier of a grid cell, derived from the
// statuses of the cell's assignments.
type CellTier string

const (
	TierNeutral  = CellTier("neutral")
	TierComplete = CellTier("complete")
	TierPartial  = CellTier("partial")
	TierNone     = CellTier("none")
)

// Assignment is one knowledge-capture task cell: (week, section, engineer)
// with the companies it covers. Date fields stay strings on the wire:
// dueDate is yyyy-mm-dd, createdAt/submittedAt are RFC 3339 timestamps.
type Assignment struct {
	Id           string       `json:"id"`
	WeekIso      string       `json:"weekIso"`
	Section      string       `json:"section"`
	Engineer     string       `json:"engineer"`
	CompanyIds   []string     `json:"companyIds"`
	DueDate      string       `json:"dueDate"`
	Status       Status       `json:"status"`
	CreatedAt    string       `json:"createdAt"`
	SubmittedAt  string       `json:"submittedAt,omitempty"`
	ReviewStatus ReviewStatus `json:"reviewStatus,omitempty"`
}

// Snapshot is the wrapped persisted shape; readers also accept a bare array.
type Snapshot struct {
	Assignments []Assignment `json:"assignments"`
}

type Company struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Sections is the closed category enumeration, in display order. "Printers"
// is a deprecated alias of "Printing" kept for records written before the
// rename.
var Sections = []string{
	"Active Directory",
	"Applications",
	"Backup",
	"Change Control Request",
	"Email",
	"File Sharing",
	"Generic Note",
	"Grants Funding",
	"Hosted Services",
	"Internet/WAN",
	"LAN",
	"Licensing",
	"Printing",
	"Remote Access",
	"Security",
	"Site Summary",
	"Student Inventory Tracking",
	"Vendors",
	"Virtualization",
	"Voice/PBX",
	"VPN",
	"Wireless",
	"Checklists",
	"Configurations",
	"Contacts",
	"Documents",
	"Domain Tracker",
	"Locations",
	"Networks",
	"Passwords",
	"SSL Tracker",
}

const deprecatedSectionAlias = "Printers"

var Engineers = []string{
	"Alice",
	"Bob",
	"Charlie",
	"Danielle",
}

var Companies = []Company{
	{Id: "C01", Name: "Acme Industries"},
	{Id: "C02", Name: "Globex Corp"},
	{Id: "C03", Name: "Initech"},
	{Id: "C04", Name: "Umbrella Health"},
	{Id: "C05", Name: "Hooli Systems"},
	{Id: "C06", Name: "Soylent Foods"},
	{Id: "C07", Name: "Stark Manufacturing"},
	{Id: "C08", Name: "Wayne Enterprises"},
}

func KnownSection(name string) bool {
	if name == deprecatedSectionAlias {
		return true
	}
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

func KnownEngineer(name string) bool {
	for _, e := range Engineers {
		if e == name {
			return true
		}
	}
	return false
}

func KnownCompany(id string) bool {
	for _, c := range Companies {
		if c.Id == id {
			return true
		}
	}
	return false
}
