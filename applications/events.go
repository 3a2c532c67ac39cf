package applications

// EventListener is implemented by modules which need to react to changes in the application registry
type EventListener interface {
	CreateHandler(new Application) error
	DeleteHandler(old Application) error
	SubscribeHandler(app Application, source EventSource) error
	UnsubscribeHandler(app Application, source EventSource) error
}

// eventHandler implements sequential fan-out/fan-in of registry events
type eventHandler []EventListener

func (h eventHandler) created(new Application) error {
	for i := range h {
		err := h[i].CreateHandler(new)
		if err != nil {
			return err
		}
	}
	return nil
}

func (h eventHandler) deleted(old Application) error {
	for i := range h {
		err := h[i].DeleteHandler(old)
		if err != nil {
			return err
		}
	}
	return nil
}

func (h eventHandler) subscribed(app Application, source EventSource) error {
	for i := range h {
		err := h[i].SubscribeHandler(app, source)
		if err != nil {
			return err
		}
	}
	return nil
}

func (h eventHandler) unsubscribed(app Application, source EventSource) error {
	for i := range h {
		err := h[i].UnsubscribeHandler(app, source)
		if err != nil {
			return err
		}
	}
	return nil
}
