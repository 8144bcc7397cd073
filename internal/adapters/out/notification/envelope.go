// Package notification delivers ports.Notification values. KafkaNotifier
// publishes them as JSON for the push and in-app gateways; LogNotifier only
// logs them and serves local runs without a broker.
package notification

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

var ErrNoAudience = errors.New("notification has no audience")

// Envelope is the wire form of a notification.
type Envelope struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Type     string         `json:"type"`
	Priority string         `json:"priority"`
	Data     map[string]any `json:"data,omitempty"`
	Audience Audience       `json:"audience"`
	SentAt   time.Time      `json:"sentAt"`
}

type Audience struct {
	UserIDs   []string `json:"userIds,omitempty"`
	Admins    bool     `json:"admins,omitempty"`
	Broadcast bool     `json:"broadcast,omitempty"`
}

func newEnvelope(n ports.Notification, now time.Time) (Envelope, error) {
	if len(n.UserIDs) == 0 && !n.ToAdmins && !n.Broadcast {
		return Envelope{}, ErrNoAudience
	}

	priority := n.Priority
	if priority == "" {
		priority = ports.PriorityNormal
	}
	kind := n.Type
	if kind == "" {
		kind = ports.NotificationGeneral
	}

	env := Envelope{
		ID:       kernel.NewUUID().String(),
		Title:    n.Title,
		Message:  n.Message,
		Type:     string(kind),
		Priority: string(priority),
		Data:     n.Data,
		Audience: Audience{Admins: n.ToAdmins, Broadcast: n.Broadcast},
		SentAt:   now.UTC(),
	}
	for _, id := range n.UserIDs {
		env.Audience.UserIDs = append(env.Audience.UserIDs, id.String())
	}
	return env, nil
}

// key groups the messages of one audience on one partition.
func (e Envelope) key() string {
	switch {
	case e.Audience.Broadcast:
		return "broadcast"
	case e.Audience.Admins && len(e.Audience.UserIDs) == 0:
		return "admins"
	case len(e.Audience.UserIDs) > 0:
		return e.Audience.UserIDs[0]
	default:
		return e.ID
	}
}

func toUser(n ports.Notification, userID kernel.UUID) ports.Notification {
	n.UserIDs = []kernel.UUID{userID}
	n.ToAdmins = false
	n.Broadcast = false
	return n
}

func toAdmins(n ports.Notification) ports.Notification {
	n.UserIDs = nil
	n.ToAdmins = true
	n.Broadcast = false
	return n
}

func toEveryone(n ports.Notification) ports.Notification {
	n.UserIDs = nil
	n.ToAdmins = false
	n.Broadcast = true
	return n
}
