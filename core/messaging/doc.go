// Package messaging publishes catalog domain events.
//
// The Publisher interface hides the transport. NewPublisher returns a Kafka-backed
// publisher (segmentio/kafka-go) when brokers are configured, and a no-op publisher
// otherwise, so the service runs unchanged without a broker.
//
// Events are JSON encoded and keyed by product SKU, which keeps all events for one
// configurable product on the same partition and therefore ordered.
//
// # Usage
//
//	pub := messaging.NewPublisher(cfg.Events)
//	defer pub.Close()
//	_ = pub.Publish(ctx, "CFG-1", event)
package messaging
