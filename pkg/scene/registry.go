package scene

import (
	"fmt"
	"sort"
)

// Builder constructs a named scene for the given aspect ratio
type Builder func(aspectRatio float64) (*Scene, error)

var builders = map[string]Builder{
	"cornell":       NewCornellScene,
	"cornell-smoke": NewCornellSmokeScene,
	"showcase":      NewShowcaseScene,
}

// Names returns the registered scene names
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene, or returns an error for unknown names
func Build(name string, aspectRatio float64) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(aspectRatio)
}
