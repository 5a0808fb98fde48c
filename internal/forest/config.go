package forest

// Config controls how a Forest is grown.
type Config struct {
	// Trees is the number of trees in the ensemble.
	Trees int

	// Seed makes bootstrap sampling and feature selection reproducible.
	Seed uint64

	// MaxFeatures is the number of non-constant features examined at each
	// split. Zero means max(1, floor(sqrt(features))).
	MaxFeatures int

	// MinSamplesSplit is the smallest node that may still be split.
	MinSamplesSplit int
}

// DefaultConfig returns the settings the readiness model is trained with.
func DefaultConfig() Config {
	return Config{
		Trees:           100,
		Seed:            42,
		MinSamplesSplit: 2,
	}
}
