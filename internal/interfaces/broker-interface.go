package interfaces

// ProducerHandler publishes lifecycle events keyed by achievement id.
type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}
