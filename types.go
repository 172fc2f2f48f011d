package recipecatalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier delivers a one-off message to the people operating the catalog.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// ReportLoadFailure logs a failed catalog load and forwards it to n once.
// A nil notifier only logs.
func ReportLoadFailure(ctx context.Context, n Notifier, source string, err error) {
	slog.Error("SETUP: Unable to load recipes", "source", source, "error", err)
	if n == nil {
		return
	}
	msg := fmt.Sprintf("Unable to load recipes from %s: %v", source, err)
	if nerr := n.Notify(ctx, msg); nerr != nil {
		slog.Error("SETUP: Failed to report load failure", "error", nerr)
	}
}
