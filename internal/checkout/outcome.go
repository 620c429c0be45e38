package checkout

import (
	"strings"

	"github.com/aannayev/QaTask/internal/models"
	"github.com/aannayev/QaTask/internal/ui"
)

// OutcomeReader reads the terminal result of a completed workflow. It is a
// pure read and idempotent; it is only meaningful once the workflow has
// reached its terminal step.
type OutcomeReader struct {
	port ui.Port
}

// NewOutcomeReader creates an outcome reader over the given port.
func NewOutcomeReader(port ui.Port) *OutcomeReader {
	return &OutcomeReader{port: port}
}

// Read returns the order outcome. Success means the order-completed marker is
// visible; the order number is only read on success and is otherwise empty.
func (r *OutcomeReader) Read() models.OrderOutcome {
	if !r.port.IsVisible(successMarker) {
		return models.OrderOutcome{}
	}

	outcome := models.OrderOutcome{Succeeded: true}
	if r.port.IsVisible(orderNumberElement) {
		if text, err := r.port.ReadText(orderNumberElement); err == nil {
			outcome.OrderNumber = strings.TrimSpace(text)
		}
	}
	return outcome
}
