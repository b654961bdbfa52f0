package notify

import (
	"context"
	"log"

	"courier-print-service/internal/domain"
)

// LogNotifier is the default outcome hook: one summary line per attempt.
// Deployments embedding the service swap in their own UI-facing notifier.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, result domain.PrintResult) {
	if result.Success {
		log.Printf("print.outcome success=true printer=%q msg=%q", result.PrinterName, result.Message)
		return
	}
	log.Printf("print.outcome success=false code=%s msg=%q", result.ErrorCode, result.Message)
}
