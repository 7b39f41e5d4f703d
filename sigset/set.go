package sigset

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

// MaxSignal is the highest signal number a Set can hold.
const MaxSignal = 64

// Set is a set of signal numbers in [1, MaxSignal].
//
// The zero Set is empty and ready to use. Copies of a Set share storage;
// use Clone for an independent copy.
type Set struct {
	bits *bitset.BitSet
}

// Of returns a Set holding sigs. Out-of-range signals are ignored.
func Of(sigs ...unix.Signal) Set {
	var s Set
	for _, sig := range sigs {
		_ = s.Add(sig)
	}
	return s
}

// Full returns a Set holding every signal.
func Full() Set {
	b := bitset.New(MaxSignal + 1)
	for i := uint(1); i <= MaxSignal; i++ {
		b.Set(i)
	}
	return Set{bits: b}
}

func valid(sig unix.Signal) bool {
	return sig >= 1 && sig <= MaxSignal
}

// Add inserts sig. It fails with EINVAL if sig is out of range.
func (s *Set) Add(sig unix.Signal) error {
	if !valid(sig) {
		return errno.FromCode(int(unix.EINVAL))
	}
	if s.bits == nil {
		s.bits = bitset.New(MaxSignal + 1)
	}
	s.bits.Set(uint(sig))
	return nil
}

// Remove deletes sig. It fails with EINVAL if sig is out of range.
func (s *Set) Remove(sig unix.Signal) error {
	if !valid(sig) {
		return errno.FromCode(int(unix.EINVAL))
	}
	if s.bits != nil {
		s.bits.Clear(uint(sig))
	}
	return nil
}

// Contains reports whether sig is in the set.
func (s Set) Contains(sig unix.Signal) bool {
	return valid(sig) && s.bits != nil && s.bits.Test(uint(sig))
}

// Len returns the number of signals in the set.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Signals returns the members in ascending order.
func (s Set) Signals() []unix.Signal {
	if s.bits == nil {
		return nil
	}
	var out []unix.Signal
	for i, ok := s.bits.NextSet(1); ok && i <= MaxSignal; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, unix.Signal(i))
	}
	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	if s.bits == nil {
		return Set{}
	}
	return Set{bits: s.bits.Clone()}
}

// Union returns the signals in s or o.
func (s Set) Union(o Set) Set {
	return Set{bits: s.words().Union(o.words())}
}

// Intersect returns the signals in both s and o.
func (s Set) Intersect(o Set) Set {
	return Set{bits: s.words().Intersection(o.words())}
}

// Difference returns the signals in s but not in o.
func (s Set) Difference(o Set) Set {
	return Set{bits: s.words().Difference(o.words())}
}

// Equal reports whether s and o hold the same signals.
func (s Set) Equal(o Set) bool {
	return s.Mask() == o.Mask()
}

func (s Set) words() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(MaxSignal + 1)
	}
	return s.bits
}

// Mask returns the kernel representation: bit sig-1 set for each member.
func (s Set) Mask() uint64 {
	var m uint64
	for _, sig := range s.Signals() {
		m |= 1 << (uint(sig) - 1)
	}
	return m
}

// FromMask converts a kernel mask back into a Set.
func FromMask(m uint64) Set {
	var s Set
	for i := range MaxSignal {
		if m&(1<<uint(i)) != 0 {
			_ = s.Add(unix.Signal(i + 1))
		}
	}
	return s
}

func (s Set) String() string {
	sigs := s.Signals()
	names := make([]string, len(sigs))
	for i, sig := range sigs {
		if name := unix.SignalName(sig); name != "" {
			names[i] = name
		} else {
			names[i] = sig.String()
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
