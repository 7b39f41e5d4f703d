package syskit_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/hupe1980/syskit"
	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/fd"
	"github.com/hupe1980/syskit/negotiate"
	"github.com/hupe1980/syskit/scall"
	"github.com/hupe1980/syskit/testutil"
	"golang.org/x/sys/unix"
)

// Example_pipe writes through one end of a pipe and reads from the other.
func Example_pipe() {
	r, w, err := fd.Pipe(unix.O_CLOEXEC)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	if _, err := w.Write([]byte("hello, pipe")); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	// Output: hello, pipe
}

// Example_wouldBlock classifies the failure of a read that cannot proceed.
func Example_wouldBlock() {
	r, w, err := fd.Pipe(unix.O_CLOEXEC | unix.O_NONBLOCK)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	_, err = r.Read(make([]byte, 16))
	e, _ := errno.FromError(err)
	fmt.Println(e.Name(), e.Kind())
	// Output: EAGAIN would block
}

// Example_doubleClose shows that a released guard rejects further use.
func Example_doubleClose() {
	r, w, err := fd.Pipe(unix.O_CLOEXEC)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	fmt.Println(r.Close())
	fmt.Println(r.Close())
	fmt.Println(r.Fd())
	// Output:
	// <nil>
	// fd: descriptor already released
	// -1
}

// Example_negotiate fills a caller buffer and trims the result to the written length.
func Example_negotiate() {
	value := strings.Repeat("z", 1000)
	out, err := negotiate.Fixed(make([]byte, 2048)).Negotiate("example", func(buf []byte) (int, error) {
		if len(buf) < len(value) {
			return -1, unix.ERANGE
		}
		return copy(buf, value), nil
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(out), cap(out))
	// Output: 1000 1000
}

// Example_restartLogging logs the restarts of an interrupted call.
func Example_restartLogging() {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	syskit.Configure(syskit.WithLogger(syskit.NewLogger(handler)))
	defer syskit.Configure()

	op := scall.NewOp("read", scall.Sentinel)
	n, err := scall.Invoke(op, testutil.Interrupts(2, testutil.Ok(5)).Raw)
	fmt.Println(n, err)
	fmt.Print(buf.String())
	// Output:
	// 5 <nil>
	// level=DEBUG msg="native call interrupted, restarting" op=read attempt=1
	// level=DEBUG msg="native call interrupted, restarting" op=read attempt=2
}
