// Package uptime reports how long the operating system has been running.
//
// The query is answered by exactly one platform mechanism, selected at
// build time: /proc/uptime on Linux and Android, the GetTickCount64 tick
// counter on Windows, and the kern.boottime sysctl on macOS, iOS and
// FreeBSD. On any other system every call fails with ErrUnsupported.
//
// Each call reads the operating system fresh; nothing is cached and no
// process-local state is touched, so the package is safe for concurrent
// use without coordination.
//
//	ms, err := uptime.Get()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("OS uptime %d ms\n", ms)
package uptime
