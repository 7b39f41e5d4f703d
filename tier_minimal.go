//go:build syskit_minimal

package syskit

// BuildTier is the tier this binary was compiled for.
const BuildTier = TierMinimal
