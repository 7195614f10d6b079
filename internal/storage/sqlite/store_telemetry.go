package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natur-festival/natur.eco/internal/storage"
)

// AppendTelemetryEvent records one operational telemetry event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	attributes := []byte("{}")
	if len(evt.Attributes) > 0 {
		encoded, err := json.Marshal(evt.Attributes)
		if err != nil {
			return fmt.Errorf("marshal attributes: %w", err)
		}
		attributes = encoded
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (timestamp, event_name, severity, user_id, wizard_id, request_id, attributes_json)
VALUES (?, ?, ?, ?, ?, ?, ?);
`,
		toMillis(evt.Timestamp),
		evt.EventName,
		evt.Severity,
		evt.UserID,
		evt.WizardID,
		evt.RequestID,
		string(attributes),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}
