package events

import "sync"

// Topics broadcast across the application. They replace the window-level
// custom events of the legacy browser client: any open view subscribes and
// refreshes without a reload.
const (
	TopicTasksUpdated    = "tasks:updated"
	TopicSurveyUpdated   = "survey:updated"
	TopicAttendanceSaved = "attendance:saved"
	TopicStorageExternal = "storage:external"
)

// Bus is a small in-process publish/subscribe broadcaster. Publish never
// blocks: a subscriber that has fallen behind loses notifications, which is
// fine because every notification means "re-read the store", not "here is
// the change".
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]chan string
}

func NewBus() *Bus {
	return &Bus{subs: map[string][]chan string{}}
}

// Subscribe returns a channel of payloads for topic and a cancel function.
func (b *Bus) Subscribe(topic string) (<-chan string, func()) {
	ch := make(chan string, 8)
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[topic]
		for i, c := range subs {
			if c == ch {
				b.subs[topic] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

// Publish delivers payload to every subscriber of topic, dropping it for
// subscribers with full buffers.
func (b *Bus) Publish(topic, payload string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[topic] {
		select {
		case ch <- payload:
		default:
		}
	}
}
