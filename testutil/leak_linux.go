package testutil

import (
	"github.com/prometheus/procfs"
)

// OpenDescriptors returns the number of descriptors open in this process,
// read from /proc/self/fd.
func OpenDescriptors() (int, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return 0, err
	}
	p, err := fs.Self()
	if err != nil {
		return 0, err
	}
	return p.FileDescriptorsLen()
}

// DescriptorTargets returns what each open descriptor refers to, such as
// "pipe:[1234]" or a file path.
func DescriptorTargets() ([]string, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, err
	}
	p, err := fs.Self()
	if err != nil {
		return nil, err
	}
	return p.FileDescriptorTargets()
}
