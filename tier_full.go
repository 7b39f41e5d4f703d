//go:build !syskit_alloc && !syskit_minimal

package syskit

// BuildTier is the tier this binary was compiled for.
const BuildTier = TierFull
