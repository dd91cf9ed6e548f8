package gen

var (
	// FeatureRegions wraps each group of generated members in
	// "// region" / "// endregion" marker comments.
	FeatureRegions = Feature{
		Name:        "regions",
		Stage:       Stable,
		Default:     false,
		Description: "Wraps groups of generated members in region marker comments for editor folding",
	}

	// FeatureConversions generates conversion methods between vectors of
	// the same arity and different scalar kinds.
	FeatureConversions = Feature{
		Name:        "conversions",
		Stage:       Stable,
		Default:     true,
		Description: "Generates widening and narrowing conversions between vectors of equal arity",
	}

	// FeatureSwizzleSetters generates setter methods for swizzles whose
	// components are pairwise distinct.
	FeatureSwizzleSetters = Feature{
		Name:        "swizzle/setters",
		Stage:       Stable,
		Default:     true,
		Description: "Generates setters for read-write swizzles (no repeated component)",
	}

	// FeatureManifest records the generated files in the target directory
	// and removes files that a previous run generated and this run did not.
	FeatureManifest = Feature{
		Name:        "manifest",
		Stage:       Beta,
		Default:     true,
		Description: "Records generated files and removes stale ones left by earlier runs",
		cleanup: func(c *Config) error {
			return removeManifest(c.Target)
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureRegions,
		FeatureConversions,
		FeatureSwizzleSetters,
		FeatureManifest,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and their output may change
	// between releases.
	Experimental

	// Alpha features are complete, but their generated API may still change.
	Alpha

	// Beta features are documented, and no breaking changes are expected.
	Beta

	// Stable features have been generated unchanged for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the nums codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
