package metrics

import "emperror.dev/errors"

// Descriptor documents one trackable metric.
type Descriptor struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Keys        []string `yaml:"keys,omitempty" json:"keys,omitempty"`
}

// Catalog returns the descriptors for the default metrics of a source kind.
func Catalog(kind string) ([]Descriptor, error) {
	switch kind {
	case SourceRuntime:
		return runtimeDescriptors(), nil
	case SourceProcess:
		return processDescriptors(), nil
	default:
		return nil, errors.WithDetails(errors.New("unsupported metric source"), "kind", kind)
	}
}
