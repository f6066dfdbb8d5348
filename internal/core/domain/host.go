package domain

import "runtime"

const (
	// MinFreeDiskBytes is the free disk space below which a warning is issued.
	MinFreeDiskBytes uint64 = 100 << 30
	// MinMemoryBytes is the amount of RAM below which a warning is issued.
	MinMemoryBytes uint64 = 16 << 30
	// MinPythonMajor is the lowest python3 major version the repo tool supports.
	MinPythonMajor = 3
	// SupportedOS is the only host operating system AOSP builds on.
	SupportedOS = "linux"
)

// HostReport holds the results of the host probes. A probe that failed leaves its
// value at zero and records the error instead.
type HostReport struct {
	FreeDiskBytes uint64
	DiskErr       error
	MemoryBytes   uint64
	MemoryErr     error
	PythonMajor   int
	PythonErr     error
}

// CompileJobs returns the compiler parallelism for a host.
func CompileJobs(cpus int) int {
	if cpus < 1 {
		return runtime.NumCPU()
	}
	return cpus
}
