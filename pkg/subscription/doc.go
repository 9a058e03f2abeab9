// Package subscription is the client-side notification bus: one typed
// event per observable state change, published synchronously from the
// connection's read goroutine.
//
// Subscribers must not block. Subscribe and Unsubscribe are legal from
// any goroutine and take effect at the next event boundary; a
// subscriber added or removed during a Publish sees the change from
// the following event on.
//
// Events do not survive connection loss. On reconnect the mirror state
// is re-primed by querying, not replayed.
package subscription
