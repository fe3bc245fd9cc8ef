package progs

import (
	"fmt"
	"sort"

	"github.com/mouse-blink/hoppit/internal/domain"
	m "github.com/mouse-blink/hoppit/internal/model"
)

// Factory implements domain.Factory over the built-in example programs.
type Factory struct{}

// NewFactory constructs the built-in program factory.
func NewFactory() Factory {
	return Factory{}
}

type entry struct {
	description string
	build       func(rng *domain.RNG) domain.Program[float64]
}

var registry = map[string]entry{
	"gaussian": {
		description: "1-D standard normal, fully continuous",
		build: func(rng *domain.RNG) domain.Program[float64] {
			return gaussian{rng: rng}
		},
	},
	"normal-mean": {
		description: "posterior mean of a Gaussian from one observation",
		build: func(rng *domain.RNG) domain.Program[float64] {
			return normalMean{rng: rng}
		},
	},
	"geometric": {
		description: "geometric count of sign-tested normal draws, nonparametric",
		build: func(rng *domain.RNG) domain.Program[float64] {
			return geometric{rng: rng}
		},
	},
	"mixture": {
		description: "two-component Gaussian mixture with a discontinuous branch",
		build: func(rng *domain.RNG) domain.Program[float64] {
			return mixture{rng: rng}
		},
	},
}

// Infos lists the registered programs sorted by name.
func (Factory) Infos() []m.ModelInfo {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]m.ModelInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, m.ModelInfo{
			Name:        name,
			Description: registry[name].description,
		})
	}

	return infos
}

// New builds the named program against the given random stream.
func (Factory) New(name string, rng *domain.RNG) (domain.Program[float64], error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown model %q", name)
	}

	return e.build(rng), nil
}
