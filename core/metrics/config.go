package metrics

import "github.com/kilianp07/energy-predict/core/factory"

// Config lists the sinks that receive prediction events.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
