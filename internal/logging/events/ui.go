package events

import "github.com/atomicstack/pantry-basket-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type InputTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Input   = InputTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) ListEnter(name, filter string) {
	logging.Trace("list.enter", map[string]interface{}{
		"basket": name,
		"filter": filter,
	})
}

func (UITracer) ListCursor(cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (InputTracer) Focus(basket string) {
	logging.Trace("input.focus", map[string]interface{}{"basket": basket})
}

func (InputTracer) Blur(length int) {
	logging.Trace("input.blur", map[string]interface{}{"length": length})
}

func (CommandTracer) Queue(id, action, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "action": action, "label": label})
}

func (CommandTracer) Skip(id, action, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "action": action, "label": label})
}

func (CommandTracer) Result(id, action, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "action": action, "label": label, "msg": msgType})
}
