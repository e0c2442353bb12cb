package change

import "errors"

// Sentinel errors for the coordinator.
var (
	// ErrNilSnapshot is returned when a notification carries no snapshot.
	ErrNilSnapshot = errors.New("notification has nil snapshot")

	// ErrNilListener is returned when Subscribe is given a nil listener.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown
	// subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
