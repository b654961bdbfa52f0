package ports

import (
	"context"

	"courier-print-service/internal/domain"
)

// Port: outbound notification hook for print outcomes. Output-only; it is
// never a control channel back into the subsystem, and the orchestrator
// invokes it exactly once per attempt.
type Notifier interface {
	Notify(ctx context.Context, result domain.PrintResult)
}
