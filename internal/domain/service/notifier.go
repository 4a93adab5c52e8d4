package service

import (
	"context"
)

// Notifier sends the registration confirmation to a newly created party.
type Notifier interface {
	// Notify delivers a confirmation addressed to displayName at email.
	Notify(ctx context.Context, displayName, email string) error
}
