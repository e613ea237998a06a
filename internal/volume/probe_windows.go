//go:build windows

package volume

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// SystemProber probes drive letters through kernel32.
type SystemProber struct {
	getVolumeInformation *syscall.LazyProc
}

// NewSystemProber creates the prober for the running platform.
func NewSystemProber() *SystemProber {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	return &SystemProber{
		getVolumeInformation: kernel32.NewProc("GetVolumeInformationW"),
	}
}

// Candidates returns every drive root from A:\ to Z:\.
func (p *SystemProber) Candidates() []string {
	roots := make([]string, 0, 26)
	for i := 0; i < 26; i++ {
		roots = append(roots, string(rune('A'+i))+`:\`)
	}
	return roots
}

// Exists reports whether the drive root can be stat'ed.
func (p *SystemProber) Exists(root string) bool {
	_, err := os.Stat(root)
	return err == nil
}

// Label returns the volume label of the drive.
func (p *SystemProber) Label(root string) (string, error) {
	rootPtr, err := syscall.UTF16PtrFromString(root)
	if err != nil {
		return "", err
	}

	// MAX_PATH + 1
	buf := make([]uint16, 261)
	ret, _, callErr := p.getVolumeInformation.Call(
		uintptr(unsafe.Pointer(rootPtr)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0, 0, 0, 0, 0,
	)
	if ret == 0 {
		return "", fmt.Errorf("GetVolumeInformationW %s: %w", root, callErr)
	}
	return syscall.UTF16ToString(buf), nil
}
