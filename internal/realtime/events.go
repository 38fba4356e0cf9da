package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const workerEventsChannel = "workers:events"

// Publisher pushes worker change events to Redis so every API instance's hub
// can relay them. Satisfies workers.Notifier.
type Publisher struct {
	RDB *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{RDB: rdb}
}

func (p *Publisher) WorkerUpdated(workerID uuid.UUID) {
	payload, err := json.Marshal(map[string]any{
		"type":      "worker.updated",
		"worker_id": workerID.String(),
	})
	if err != nil {
		log.Printf("Error marshaling worker event: %v", err)
		return
	}
	if err := p.RDB.Publish(context.Background(), workerEventsChannel, payload).Err(); err != nil {
		log.Printf("Error publishing worker event: %v", err)
	}
}

// RelayWorkerEvents pipes the Redis channel into the hub. Run it as a
// goroutine next to hub.Run.
func RelayWorkerEvents(ctx context.Context, rdb *redis.Client, hub *Hub) {
	sub := rdb.Subscribe(ctx, workerEventsChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		hub.Broadcast([]byte(msg.Payload))
	}
}
