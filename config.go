package stockpile

// Config holds global configuration for the storage system
var Config config = config{}

type config struct {
	events StorageEvents
}

// StorageEvents carries optional callbacks invoked by every storage.
type StorageEvents struct {
	OnEntityCreated     func(id int64)
	OnComponentAttached func(id int64, name string)
}

// SetStorageEvents configures the storage event callbacks
func (c *config) SetStorageEvents(ev StorageEvents) {
	c.events = ev
}
