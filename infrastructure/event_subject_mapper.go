package infrastructure

import (
	"fmt"

	"github.com/MrMafora/Snap-Lotto-sub006/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeDrawImported:
		return "lotto.draw.imported"
	case events.EventTypeDataQuality:
		return "lotto.draw.quality_finding"
	case events.EventTypeTicketChecked:
		return "lotto.ticket.checked"
	default:
		return fmt.Sprintf("lotto.unknown.%s", event.Type())
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"lotto.draw.imported",
		"lotto.draw.quality_finding",
		"lotto.ticket.checked",
	}
}
