package booking

import "github.com/lemonscar/detailing-api/internal/audit"

func audrecord(userID, action, entity, entityID string) audit.Event {
	return audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
	}
}
