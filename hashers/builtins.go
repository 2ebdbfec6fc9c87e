package hashers

import "github.com/brettbedarf/dedupe"

type BuiltInHasherType = string

const (
	SHA256HasherType    BuiltInHasherType = "sha256"
	SHA3HasherType      BuiltInHasherType = "sha3-256"
	SHA256SumHasherType BuiltInHasherType = "sha256sum"
)

// RegisterBuiltins registers all built-in hashers in the default registry
// or only the specific ones if keys are provided
func RegisterBuiltins(hashers ...BuiltInHasherType) {
	defaultRegistry.RegisterBuiltins(hashers...)
}

// RegisterBuiltins is the [Registry] form of the package level [RegisterBuiltins].
func (r *Registry) RegisterBuiltins(hashers ...BuiltInHasherType) {
	if len(hashers) == 0 {
		// Include all built-in hashers here when adding implementations
		hashers = append(hashers, SHA256HasherType, SHA3HasherType, SHA256SumHasherType)
	}

	for _, key := range hashers {
		switch key {
		case SHA256HasherType:
			r.Register(key, func() (dedupe.Hasher, error) { return NewSHA256(), nil })
		case SHA3HasherType:
			r.Register(key, func() (dedupe.Hasher, error) { return NewSHA3_256(), nil })
		case SHA256SumHasherType:
			r.Register(key, func() (dedupe.Hasher, error) { return NewExec(DefaultSumCommand...) })
		}
	}
}
