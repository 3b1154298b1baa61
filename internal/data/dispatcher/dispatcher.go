package dispatcher

import (
	"github.com/atomicstack/loandesk/internal/backend"
	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/state"
)

type Result struct {
	DatasetUpdated bool
	Version        uint64
}

type Dispatcher struct {
	datasets state.DatasetStore
}

func New(d state.DatasetStore) *Dispatcher {
	return &Dispatcher{datasets: d}
}

// Handle applies a backend event to the stores. Failed loads and recovery
// notices leave the current dataset in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Dataset.Error(evt.Path, evt.Err)
		return res
	}
	if evt.Recovered {
		events.Dataset.Recovered(evt.Path)
		return res
	}
	switch evt.Kind {
	case backend.KindDataset:
		d.datasets.SetDataset(evt.Data)
		res.DatasetUpdated = true
		res.Version = d.datasets.Version()
		events.Dataset.Reload(evt.Path, res.Version)
	}
	return res
}
