package metrics

// Config carries the labels attached to every metric.
type Config struct {
	ServiceName string
	Environment string
}
