package applications

// LocalClient implements a local application registry client
type LocalClient struct {
	storage Storage
}

// NewLocalClient returns a new LocalClient given a storage
func NewLocalClient(storage Storage) *LocalClient {
	return &LocalClient{
		storage,
	}
}

// Add registers an Application
func (c *LocalClient) Add(app Application) (*Application, error) {
	return c.storage.Add(app)
}

// Delete removes an Application
func (c *LocalClient) Delete(name string) error {
	return c.storage.Delete(name)
}

// Get retrieves an Application
func (c *LocalClient) Get(name string) (*Application, error) {
	return c.storage.Get(name)
}

// GetMany returns all registered Applications
func (c *LocalClient) GetMany() ([]Application, error) {
	return c.storage.GetMany()
}

// Subscribe subscribes the application to one or more event sources
func (c *LocalClient) Subscribe(name string, sources ...string) (*Application, error) {
	parsed, err := ParseEventSources(sources)
	if err != nil {
		return nil, err
	}
	return c.storage.Subscribe(name, parsed)
}

// Unsubscribe unsubscribes the application from one or more event sources
func (c *LocalClient) Unsubscribe(name string, sources ...string) (*Application, error) {
	parsed, err := ParseEventSources(sources)
	if err != nil {
		return nil, err
	}
	return c.storage.Unsubscribe(name, parsed)
}
