//go:build linux || darwin

package unistd

import (
	"bytes"

	"github.com/hupe1980/syskit/negotiate"
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

var (
	opListxattr = scall.NewOp("listxattr", scall.Sentinel)
	opGetxattr  = scall.NewOp("getxattr", scall.Sentinel)
)

// Listxattr returns the names of the extended attributes of path. The size
// is queried first; if attributes are added before the names are read, the
// size is queried again.
func Listxattr(path string, opts ...negotiate.Option) ([]string, error) {
	list := func(buf []byte) (int, error) {
		return scall.Do(opListxattr, func() (int, error) {
			return unix.Listxattr(path, buf)
		})
	}
	out, err := negotiate.DefaultQuery(func() (int, error) { return list(nil) }, opts...).
		Negotiate(opListxattr.Name, list)
	if err != nil {
		return nil, err
	}

	var names []string
	for len(out) > 0 {
		i := bytes.IndexByte(out, 0)
		if i < 0 {
			i = len(out)
		}
		if i > 0 {
			names = append(names, string(out[:i]))
		}
		out = out[min(i+1, len(out)):]
	}
	return names, nil
}

// Getxattr returns the value of the extended attribute name of path.
func Getxattr(path, name string, opts ...negotiate.Option) ([]byte, error) {
	get := func(buf []byte) (int, error) {
		return scall.Do(opGetxattr, func() (int, error) {
			return unix.Getxattr(path, name, buf)
		})
	}
	return negotiate.DefaultQuery(func() (int, error) { return get(nil) }, opts...).
		Negotiate(opGetxattr.Name, get)
}
