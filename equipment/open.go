package equipment

import "fmt"

// Open loads a catalog from the given source: "yaml" reads a catalog file,
// "sqlite" reads the equipment table of a SQLite database.
func Open(source, path string) (Table, error) {
	switch source {
	case "yaml":
		return LoadYAML(path)
	case "sqlite":
		store, err := OpenStore(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load()
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}
