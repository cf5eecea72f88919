package dispatcher

import (
	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/logging"
	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
	"github.com/atomicstack/pantry-basket-control/internal/pantry"
	"github.com/atomicstack/pantry-basket-control/internal/state"
)

// Result tells the model which parts of its state changed.
type Result struct {
	RegistryUpdated  bool
	SelectionChanged bool
	ContentUpdated   bool
	Refetch          bool
	ClearInput       bool
	Info             string
	Err              error
}

type Dispatcher struct {
	registry state.RegistryStore
	content  state.ContentStore
}

func New(r state.RegistryStore, c state.ContentStore) *Dispatcher {
	return &Dispatcher{registry: r, content: c}
}

// HandleLoad applies a fetch result. Results for a basket that is no longer
// selected are dropped.
func (d *Dispatcher) HandleLoad(load basket.LoadResult) Result {
	var res Result
	selected := d.registry.Selected()
	if load.Basket != selected {
		events.Basket.Stale(load.Basket, selected)
		return res
	}
	res.ContentUpdated = true
	switch {
	case load.Err == nil:
		d.content.SetLoaded(load.Basket, load.Data)
		events.Basket.Loaded(load.Basket, len(load.Data))
	case pantry.IsNotFound(load.Err):
		d.content.SetEmpty(load.Basket)
		events.Basket.Empty(load.Basket)
	default:
		d.content.SetFailed(load.Basket)
		logging.Failure("fetching data", load.Err)
	}
	return res
}

// HandleAction applies the outcome of create, save, delete or rename.
// Failed actions leave the stores untouched.
func (d *Dispatcher) HandleAction(action basket.ActionResult) Result {
	res := Result{Info: action.Info}
	if action.Err != nil {
		res.Info = ""
		res.Err = action.Err
		if !basket.IsValidation(action.Err) {
			logging.Failure(actionVerb(action.Action), action.Err)
		}
		return res
	}
	switch action.Action {
	case basket.ActionNew:
		res.RegistryUpdated = d.registry.Add(action.Basket)
		res.SelectionChanged = d.registry.Select(action.Basket)
	case basket.ActionSave:
		res.Refetch = action.Basket == d.registry.Selected()
		res.ClearInput = true
	case basket.ActionDelete:
		res.RegistryUpdated = d.registry.Remove(action.Basket)
		if d.content.Basket() == action.Basket {
			d.content.Clear()
			res.ContentUpdated = true
		}
		if d.registry.Selected() == "" {
			d.registry.Select(d.registry.First())
			res.SelectionChanged = true
		}
	case basket.ActionRename:
		wasSelected := d.registry.Selected() == action.Basket
		if !d.registry.Replace(action.Basket, action.Target) {
			return res
		}
		res.RegistryUpdated = true
		if wasSelected {
			d.content.SetLoaded(action.Target, action.Data)
			res.ContentUpdated = true
			res.SelectionChanged = true
		} else {
			res.SelectionChanged = d.registry.Select(action.Target)
		}
	}
	return res
}

func actionVerb(action string) string {
	switch action {
	case basket.ActionNew:
		return "creating basket"
	case basket.ActionSave:
		return "saving data"
	case basket.ActionDelete:
		return "deleting data"
	case basket.ActionRename:
		return "renaming basket"
	default:
		return action
	}
}
