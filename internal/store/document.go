package store

// Document is the root of db.json: every collection the backend knows about,
// each an ordered list of loosely-typed records. Records are not validated
// here; whatever shape a handler stores is what comes back.
type Document struct {
	Customers     []Record `json:"customers"`
	Bookings      []Record `json:"bookings"`
	Notifications []Record `json:"notifications"`
	Reviews       []Record `json:"reviews"`
	Payments      []Record `json:"payments"`
	Routes        []Record `json:"routes"`
	Buses         []Record `json:"buses"`
	Employees     []Record `json:"employees"`
	Drivers       []Record `json:"drivers"`
	Supervisors   []Record `json:"supervisors"`

	// LastID is the id high-water mark. NextID increments it, so ids are unique
	// even when two requests insert in the same millisecond.
	LastID int64 `json:"lastId,omitempty"`
}

// CollectionNames lists every collection a well-formed document contains.
var CollectionNames = []string{
	"customers", "bookings", "notifications", "reviews", "payments",
	"routes", "buses", "employees", "drivers", "supervisors",
}

// NewDocument returns a document with every collection present and empty.
func NewDocument() *Document {
	d := &Document{}
	d.normalize()
	return d
}

func (d *Document) collection(name string) *[]Record {
	switch name {
	case "customers":
		return &d.Customers
	case "bookings":
		return &d.Bookings
	case "notifications":
		return &d.Notifications
	case "reviews":
		return &d.Reviews
	case "payments":
		return &d.Payments
	case "routes":
		return &d.Routes
	case "buses":
		return &d.Buses
	case "employees":
		return &d.Employees
	case "drivers":
		return &d.Drivers
	case "supervisors":
		return &d.Supervisors
	}
	return nil
}

// Collection returns a pointer to the named collection, or nil for an unknown
// name. Callers mutate through the pointer from inside Store.Update.
func (d *Document) Collection(name string) *[]Record {
	return d.collection(name)
}

// NextID returns a fresh record id. Must be called from inside Store.Update.
func (d *Document) NextID() int64 {
	d.LastID++
	return d.LastID
}
