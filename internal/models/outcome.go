package models

// OrderOutcome is the terminal result of a checkout workflow. It is created
// once when the workflow finishes and never mutated.
type OrderOutcome struct {
	Succeeded   bool
	OrderNumber string
}
