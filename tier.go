package syskit

// Tier identifies the runtime capabilities a build was compiled for.
//
// Go always has a heap, so tiers are selected with build tags rather than
// by what the toolchain provides:
//
//	go build                      // TierFull
//	go build -tags syskit_alloc   // TierAlloc
//	go build -tags syskit_minimal // TierMinimal
type Tier uint8

const (
	// TierMinimal only operates on caller-supplied, fixed-capacity buffers.
	TierMinimal Tier = iota
	// TierAlloc adds growable buffer negotiation.
	TierAlloc
	// TierFull adds integration with the os and io packages.
	TierFull
)

func (t Tier) String() string {
	switch t {
	case TierMinimal:
		return "minimal"
	case TierAlloc:
		return "alloc"
	case TierFull:
		return "full"
	default:
		return "unknown"
	}
}

// Allocates reports whether the tier may grow buffers on its own.
// TierFull implies every guarantee of TierAlloc.
func (t Tier) Allocates() bool {
	return t >= TierAlloc
}
