package cli

import (
	"encoding/json"
	"fmt"
	"time"
)

// printJSON pretty-prints a hub record exactly as the hub returned it.
func printJSON(record any) error {
	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}

// serverStateBadge renders a server's lifecycle state with the shared styles.
func serverStateBadge(ready bool, pending string) string {
	switch {
	case ready:
		return readyStyle.Render("READY")
	case len(pending) > 0:
		return pendingStyle.Render(fmt.Sprintf("PENDING (%s)", pending))
	default:
		return stoppedStyle.Render("STOPPED")
	}
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}
