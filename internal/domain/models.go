package domain

import "time"

const (
	// StatusCreated is assigned to every new application.
	StatusCreated = "created"
	// StatusIssued marks an application taken into work.
	StatusIssued = "issued"
	// StatusClientPaid marks an application paid by the client.
	StatusClientPaid = "client_paid"
	// StatusUsPaid marks an application paid out on our side. An application
	// whose status set contains this tag is no longer counted as active.
	StatusUsPaid = "us_paid"
)

// KnownStatus reports whether s is one of the workflow tags.
func KnownStatus(s string) bool {
	switch s {
	case StatusCreated, StatusIssued, StatusClientPaid, StatusUsPaid:
		return true
	}
	return false
}

// StatusLabels maps workflow tags to the human-readable labels used in exports.
var StatusLabels = map[string]string{
	StatusCreated:    "Created",
	StatusIssued:     "In progress",
	StatusClientPaid: "Paid by client",
	StatusUsPaid:     "Paid by us",
}

const (
	SellerTypeWhite = "white"
	SellerTypeElite = "elite"
)

const (
	// CounterApplicationNumber names the sequence for application numbers.
	CounterApplicationNumber = "applicationNumber"
	// CounterCheckNumber names the sequence for check numbers.
	CounterCheckNumber = "checkNumber"
)

type Application struct {
	ID                int64     `db:"id"`
	ApplicationNumber int64     `db:"application_number"`
	UserID            int64     `db:"user_id"`
	CompanyID         int64     `db:"company_id"`
	SellerID          int64     `db:"seller_id"`
	Status            []string  `db:"status"`
	Commission        float64   `db:"commission"`
	TotalAmount       float64   `db:"total_amount"`
	ChecksCount       int       `db:"checks_count"`
	CreatedAt         time.Time `db:"created_at"`
}

// IsActive reports whether the application still needs attention: the
// status set does not contain us_paid.
func (a *Application) IsActive() bool {
	for _, s := range a.Status {
		if s == StatusUsPaid {
			return false
		}
	}
	return true
}

type Check struct {
	ID            int64     `db:"id"`
	CheckNumber   int64     `db:"check_number"`
	ApplicationID int64     `db:"application_id"`
	Date          time.Time `db:"date"`
	Product       string    `db:"product"`
	Quantity      float64   `db:"quantity"`
	PricePerUnit  float64   `db:"price_per_unit"`
	Unit          string    `db:"unit"`
}

type Company struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	INN       string    `db:"inn"`
	CreatedAt time.Time `db:"created_at"`
}

type Seller struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	INN       string    `db:"inn"`
	TGLink    string    `db:"tg_link"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Key       string    `db:"key"`
	CanSave   bool      `db:"can_save"`
	IsBlocked bool      `db:"is_blocked"`
	CreatedAt time.Time `db:"created_at"`
}

type Admin struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsSuperAdmin bool      `db:"is_super_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// HistoryKindStatus marks entries produced by status set changes.
	HistoryKindStatus = "status"
	// HistoryKindChange marks entries produced by field edits.
	HistoryKindChange = "change"
)

const (
	HistoryActionAdd    = "add"
	HistoryActionRemove = "remove"
)

// HistoryEntry is one immutable audit record of an application. Status and
// Action are set only for entries of kind HistoryKindStatus.
type HistoryEntry struct {
	ID            int64     `db:"id"`
	ApplicationID int64     `db:"application_id"`
	AdminID       int64     `db:"admin_id"`
	Kind          string    `db:"kind"`
	Message       string    `db:"message"`
	Status        string    `db:"status"`
	Action        string    `db:"action"`
	CreatedAt     time.Time `db:"created_at"`

	// AdminName is the author's current display name, resolved at read time.
	AdminName string `db:"admin_name"`
}

const (
	AuthorTypeAdmin = "Admin"
	AuthorTypeUser  = "User"
)

type CommentFile struct {
	OriginalName string `db:"file_original_name"`
	Filename     string `db:"file_name"`
	Path         string `db:"file_path"`
	MimeType     string `db:"file_mime_type"`
}

type Comment struct {
	ID            int64        `db:"id"`
	ApplicationID int64        `db:"application_id"`
	AuthorID      int64        `db:"author_id"`
	AuthorType    string       `db:"author_type"`
	Text          string       `db:"text"`
	File          *CommentFile `db:"-"`
	CreatedAt     time.Time    `db:"created_at"`

	// AuthorName is resolved at read time from the admin or user record.
	AuthorName string `db:"author_name"`
}

// ApplicationWithRefs is an application row joined with its company, seller
// and owning user.
type ApplicationWithRefs struct {
	Application
	Company Company
	Seller  Seller
	User    User
}

// ApplicationQuery is the store-expressible part of a listing filter. Derived
// quantities (check sums, check date ranges) cannot be pushed down and are
// applied in memory by the service.
type ApplicationQuery struct {
	CompanyIDs []int64
	SellerIDs  []int64
	UserIDs    []int64
	Statuses   []string
	ActiveOnly bool

	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// Search* id sets are OR-ed together: an application matches the free-text
	// search when its company, seller or user was matched by name or inn.
	// SearchResolved distinguishes "no search" from "search matched nothing".
	SearchCompanyIDs []int64
	SearchSellerIDs  []int64
	SearchUserIDs    []int64
	SearchResolved   bool
}

// CheckQuery filters the cross-collection check listing. All predicates,
// including the line total range, are single-row derivable and pushed to the
// store.
type CheckQuery struct {
	Search     string
	CompanyIDs []int64
	SellerIDs  []int64
	DateFrom   *time.Time
	DateTo     *time.Time
	SumFrom    *float64
	SumTo      *float64
}

// CheckWithRefs is a check row joined with its application and the
// application's company and seller.
type CheckWithRefs struct {
	Check
	ApplicationTotalAmount float64
	ApplicationChecksCount int
	Company                Company
	Seller                 Seller
}

// CompanyWithStats carries application counters for the company list view.
type CompanyWithStats struct {
	Company
	TotalApplications  int
	ActiveApplications int
}

// CompanyStatistics aggregates a company's applications for the detail view.
type CompanyStatistics struct {
	TotalApplications  int
	ActiveApplications int
	TotalAmount        float64
	ActiveAmount       float64
}

// UserWithStats carries application counters for the user list view.
type UserWithStats struct {
	User
	TotalApplications  int
	ActiveApplications int
}

// Selector is a minimal id/name/inn projection used to populate filter
// dropdowns.
type Selector struct {
	ID   int64
	Name string
	INN  string
}
