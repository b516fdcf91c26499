package service

import (
	"context"

	"matjip/internal/domain/entity"
)

// Notifier surfaces a notice to the user. Fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, notice entity.Notice)
}

// Navigator moves the user to another route. Fire-and-forget.
type Navigator interface {
	GoTo(ctx context.Context, route string)
}
