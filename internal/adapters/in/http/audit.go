package http

import (
	"encoding/json"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"
)

// auditEventOf decodes Details when it is a JSON object and drops it
// otherwise.
func auditEventOf(e queries.AuditEventView) servers.AuditEvent {
	out := servers.AuditEvent{
		Id:     e.ID.Raw(),
		Action: e.Action,
		Actor:  e.Actor,
		At:     e.At,
	}
	if len(e.Details) > 0 {
		details := make(map[string]interface{})
		if err := json.Unmarshal(e.Details, &details); err == nil {
			out.Details = &details
		}
	}
	return out
}
