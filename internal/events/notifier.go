package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Event anuncia que una mutación relevante para el plano en vivo ya fue
// confirmada (reserva, walk-in, mesa o bloqueo). El transporte concreto
// (polling, streaming, pub/sub) vive detrás de Sink.
type Event struct {
	ID         string    `json:"id"`
	VenueID    uint      `json:"venue_id"`
	Entity     string    `json:"entity"` // reservation | walkin | table | block
	EntityID   uint      `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink consume eventos ya serializados. Las implementaciones no deben
// bloquear más allá de su propio timeout.
type Sink interface {
	Publish(payload []byte) error
}

// Notifier es el hook fire-and-forget de "hubo una mutación": mismo patrón
// que el dispatcher de auditoría, cola acotada y descarte bajo presión.
type Notifier struct {
	sink  Sink
	queue chan Event
}

func NewNotifier(sink Sink) *Notifier {
	n := &Notifier{
		sink:  sink,
		queue: make(chan Event, 256),
	}

	go n.worker()
	return n
}

func (n *Notifier) worker() {
	for ev := range n.queue {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := n.sink.Publish(payload); err != nil {
			log.Println("events: publish failed:", err)
		}
	}
}

// Notify encola el evento sin esperar al transporte.
func (n *Notifier) Notify(venueID uint, entity string, entityID uint, action string) {
	if n == nil {
		return
	}

	ev := Event{
		ID:         uuid.NewString(),
		VenueID:    venueID,
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}

	select {
	case n.queue <- ev:
	default:
		log.Println("events: queue full, dropping event")
	}
}
