package koppen

import "sync"

var (
	instance   *Lookup
	instanceMu sync.Mutex

	// loadInstance is replaced in tests.
	loadInstance = func() (*Lookup, error) {
		return Open(Bundled(), BundledPath)
	}
)

// GetInstance returns the process-wide lookup over the bundled dataset,
// loading it on the first call. Every successful call returns the same *Lookup.
// A failed load installs nothing, so a later call tries again.
func GetInstance() (*Lookup, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return instance, nil
	}

	l, err := loadInstance()
	if err != nil {
		return nil, err
	}
	instance = l
	return instance, nil
}
