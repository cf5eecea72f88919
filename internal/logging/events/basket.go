package events

import "github.com/atomicstack/pantry-basket-control/internal/logging"

type BasketTracer struct{}

type basketReason string

const (
	BasketReasonEscape basketReason = "escape"
	BasketReasonEmpty  basketReason = "empty"
)

var Basket = BasketTracer{}

func (BasketTracer) Select(name, previous string) {
	logging.Trace("basket.select", map[string]interface{}{"basket": name, "previous": previous})
}

func (BasketTracer) Fetch(name string) {
	logging.Trace("basket.fetch", map[string]interface{}{"basket": name})
}

func (BasketTracer) Loaded(name string, size int) {
	logging.Trace("basket.fetch.loaded", map[string]interface{}{"basket": name, "bytes": size})
}

func (BasketTracer) Empty(name string) {
	logging.Trace("basket.fetch.empty", map[string]interface{}{"basket": name})
}

func (BasketTracer) Stale(name, selected string) {
	logging.Trace("basket.fetch.stale", map[string]interface{}{"basket": name, "selected": selected})
}

func (BasketTracer) NewPrompt(existing int) {
	logging.Trace("basket.new.prompt", map[string]interface{}{"existing": existing})
}

func (BasketTracer) SubmitNew(name string) {
	logging.Trace("basket.new.submit", map[string]interface{}{"basket": name})
}

func (BasketTracer) CancelNew(reason basketReason) {
	logging.Trace("basket.new.cancel", map[string]interface{}{"reason": string(reason)})
}

func (BasketTracer) Create(name string) {
	logging.Trace("basket.new.create", map[string]interface{}{"basket": name})
}

func (BasketTracer) Save(name string, wrapped bool) {
	logging.Trace("basket.save", map[string]interface{}{"basket": name, "wrapped": wrapped})
}

func (BasketTracer) Delete(name string) {
	logging.Trace("basket.delete", map[string]interface{}{"basket": name})
}

func (BasketTracer) RenamePrompt(target string) {
	logging.Trace("basket.rename.prompt", map[string]interface{}{"target": target})
}

func (BasketTracer) SubmitRename(target, name string) {
	logging.Trace("basket.rename.submit", map[string]interface{}{"target": target, "name": name})
}

func (BasketTracer) CancelRename(target string, reason basketReason) {
	logging.Trace("basket.rename.cancel", map[string]interface{}{"target": target, "reason": string(reason)})
}

func (BasketTracer) Rename(target, name string, reused bool) {
	logging.Trace("basket.rename", map[string]interface{}{"target": target, "name": name, "reusedData": reused})
}

func (BasketTracer) RenameStep(target, name, step string) {
	logging.Trace("basket.rename.step", map[string]interface{}{"target": target, "name": name, "step": step})
}

func (BasketTracer) Invalid(action, name, reason string) {
	logging.Trace("basket.invalid", map[string]interface{}{"action": action, "basket": name, "reason": reason})
}
