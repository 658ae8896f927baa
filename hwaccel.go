// hwaccel.go - hardware capability probing.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "github.com/klauspost/cpuid/v2"

const implReference = "Reference"

var (
	hasAVX2           = false
	hardwareAccelImpl = implReference
)

func init() {
	// No AVX2 (or other) assembly kernel ships in this build: NTT and
	// InvNTT (polyring.go, polyntt.go) always run the reference Go
	// implementation. The probe is kept so IsHardwareAccelerated reports
	// the host's real capability rather than a hardcoded false, and so a
	// future accelerated kernel has a capability check to gate on.
	hasAVX2 = cpuid.CPU.Supports(cpuid.AVX2)
}

// IsHardwareAccelerated returns true iff the host CPU supports the
// instruction set an accelerated NTT kernel would use. It does not imply
// one is in use: this build always runs the reference implementation.
func IsHardwareAccelerated() bool {
	return hasAVX2
}

// HardwareImplementation names the NTT implementation in use, always
// "Reference" in this build.
func HardwareImplementation() string {
	return hardwareAccelImpl
}
