package adminapp

// Property is a listing the agency manages.
type Property struct {
	ID      string
	Title   string
	Address string
	Price   int
	Status  string
}

// Client is a prospective buyer or tenant.
type Client struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Agent is an agency employee handling reservations.
type Agent struct {
	ID   string
	Name string
}

// Reservation links a client to a property viewing slot.
type Reservation struct {
	ID         string
	PropertyID string
	ClientID   string
	AgentID    string
	Date       string
	Status     string
}

// dataset is the in-memory store the demo screens read from.
type dataset struct {
	Properties   []Property
	Clients      []Client
	Agents       []Agent
	Reservations []Reservation
}

func (d *dataset) property(id string) (Property, bool) {
	for _, p := range d.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}

func seedData() *dataset {
	return &dataset{
		Properties: []Property{
			{ID: "1", Title: "Harbor View Apartment", Address: "12 Quay St", Price: 485000, Status: "available"},
			{ID: "2", Title: "Elm Street Townhouse", Address: "8 Elm St", Price: 640000, Status: "reserved"},
			{ID: "3", Title: "Sunset Ridge Villa", Address: "3 Ridge Rd", Price: 1250000, Status: "available"},
			{ID: "42", Title: "Old Mill Loft", Address: "1 Mill Ln", Price: 390000, Status: "sold"},
		},
		Clients: []Client{
			{ID: "c1", Name: "Dana Petrov", Email: "dana@example.com", Phone: "+1 555 0101"},
			{ID: "c2", Name: "Jo Ramirez", Email: "jo@example.com", Phone: "+1 555 0102"},
		},
		Agents: []Agent{
			{ID: "a1", Name: "Sam Okafor"},
			{ID: "a2", Name: "Lee Chen"},
		},
		Reservations: []Reservation{
			{ID: "r1", PropertyID: "2", ClientID: "c1", AgentID: "a1", Date: "2026-09-01", Status: "confirmed"},
			{ID: "r2", PropertyID: "1", ClientID: "c2", AgentID: "a2", Date: "2026-09-03", Status: "pending"},
		},
	}
}
