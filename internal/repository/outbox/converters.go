package outbox

import "garmentflow/internal/entities"

func FromDomain(eventID string, event entities.OrderEvent) EventEnvelope {
	envelope := EventEnvelope{
		EventID:    eventID,
		EventType:  event.Type.String(),
		OccurredAt: event.OccurredAt,
		Payload: EventPayload{
			OrderID:       event.OrderID,
			BuyerID:       event.BuyerID,
			ManagerID:     event.ManagerID,
			Status:        event.Status.String(),
			PaymentStatus: event.PaymentStatus.String(),
		},
	}

	if event.Tracking != nil {
		envelope.Payload.Tracking = &TrackingPayload{
			ID:        event.Tracking.ID,
			Status:    event.Tracking.Status,
			Location:  event.Tracking.Location,
			Note:      event.Tracking.Note,
			CreatedAt: event.Tracking.CreatedAt,
		}
	}
	return envelope
}
