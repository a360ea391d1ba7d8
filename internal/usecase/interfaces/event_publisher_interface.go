package interfaces

// IEventPublisher abstracts the message broker used for outbound domain
// events (campaign dispatch, audit fan-out). Fire-and-forget: callers
// treat publish failures as non-fatal.
type IEventPublisher interface {
	Publish(routingKey string, payload any) error
}
