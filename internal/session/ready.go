package session

// readyWaiter выполняет действие один раз, на первом canplay своего источника
type readyWaiter struct {
	source string
	action func()
	fired  bool
}

func newReadyWaiter(source string, action func()) *readyWaiter {
	return &readyWaiter{source: source, action: action}
}

// fire выполняет действие, если событие относится к источнику ожидания.
// Возвращает true, если действие выполнено.
func (w *readyWaiter) fire(source string) bool {
	if w.fired || source != w.source {
		return false
	}
	w.fired = true
	w.action()
	return true
}
