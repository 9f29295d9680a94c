package model

// Document is the full persisted bot state: the subscriber list plus the
// company reference data the command handlers and broadcasts read.
type Document struct {
	Subscribers []int64           `json:"subscribers"`
	Company     Company           `json:"company"`
	Team        []TeamMember      `json:"team"`
	Contacts    Contacts          `json:"contacts"`
	Events      []Event           `json:"events"`
	Digests     map[string]string `json:"digests"`
}

type Company struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Contacts struct {
	IvanovsPhone string `json:"ivanovs_phone"`
	OlegEmail    string `json:"oleg_email"`
	OlegPhone    string `json:"oleg_phone"`
}

// Event is a weekly recurring company event. Events have no identity beyond
// their (day, time) pair; duplicates are scheduled twice, not deduplicated.
type Event struct {
	Day         string `json:"day"`  // weekday label, e.g. "Пятница"
	Time        string `json:"time"` // local clock, "HH:MM"
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Employee is one row of the staff roster file.
type Employee struct {
	Name       string
	Department string
	Position   string
	Email      string
	Phone      string
	HireDate   string
}
