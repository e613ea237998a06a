//go:build !windows

package volume

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

const (
	mountsFile = "/proc/self/mounts"
	labelDir   = "/dev/disk/by-label"
	darwinDir  = "/Volumes"
)

// SystemProber probes mount points. The root filesystem is always the first
// candidate; on Linux block-device mounts follow, on macOS /Volumes entries.
type SystemProber struct {
	goos string

	readFile func(name string) ([]byte, error)
	readDir  func(name string) ([]os.DirEntry, error)
	stat     func(name string) (os.FileInfo, error)
	resolve  func(path string) (string, error)

	// mount point -> source device, filled by Candidates
	devices map[string]string
}

// NewSystemProber creates the prober for the running platform.
func NewSystemProber() *SystemProber {
	return &SystemProber{
		goos:     runtime.GOOS,
		readFile: os.ReadFile,
		readDir:  os.ReadDir,
		stat:     os.Stat,
		resolve:  filepath.EvalSymlinks,
		devices:  map[string]string{},
	}
}

// Candidates returns the mount points to probe.
func (p *SystemProber) Candidates() []string {
	if p.goos == "linux" {
		return p.linuxCandidates()
	}
	return p.volumesDirCandidates()
}

func (p *SystemProber) linuxCandidates() []string {
	roots := []string{"/"}
	data, err := p.readFile(mountsFile)
	if err != nil {
		return roots
	}

	seen := map[string]bool{"/": true}
	var extra []string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		source := unescapeMount(fields[0])
		mountPoint := unescapeMount(fields[1])

		// Pseudo and virtual filesystems never have a /dev source
		if !strings.HasPrefix(source, "/dev/") {
			continue
		}
		if mountPoint == "/" {
			p.devices["/"] = source
			continue
		}
		// Skip the loop-mounted snap images
		if strings.HasPrefix(mountPoint, "/snap/") || strings.HasPrefix(mountPoint, "/boot") {
			continue
		}
		if seen[mountPoint] {
			continue
		}
		seen[mountPoint] = true
		p.devices[mountPoint] = source
		extra = append(extra, mountPoint)
	}

	sort.Strings(extra)
	return append(roots, extra...)
}

func (p *SystemProber) volumesDirCandidates() []string {
	roots := []string{"/"}
	entries, err := p.readDir(darwinDir)
	if err != nil {
		return roots
	}
	var extra []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		extra = append(extra, filepath.Join(darwinDir, entry.Name()))
	}
	sort.Strings(extra)
	return append(roots, extra...)
}

// Exists reports whether the root is an existing directory.
func (p *SystemProber) Exists(root string) bool {
	info, err := p.stat(root)
	return err == nil && info.IsDir()
}

// Label resolves the volume label of a mount point.
func (p *SystemProber) Label(root string) (string, error) {
	if p.goos != "linux" {
		if filepath.Dir(root) == darwinDir {
			return filepath.Base(root), nil
		}
		return "", nil
	}

	device, ok := p.devices[root]
	if !ok {
		return "", nil
	}
	deviceReal, err := p.resolve(device)
	if err != nil {
		deviceReal = device
	}

	entries, err := p.readDir(labelDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No volume on this machine carries a label
			return "", nil
		}
		return "", err
	}
	for _, entry := range entries {
		target, err := p.resolve(filepath.Join(labelDir, entry.Name()))
		if err != nil {
			continue
		}
		if target == deviceReal {
			return unescapeMount(entry.Name()), nil
		}
	}
	return "", nil
}

// unescapeMount decodes the octal escapes used by the kernel in mount tables
// and udev link names (e.g. "\040" for a space, "\x20" for udev).
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		if s[i] == '\\' && i+3 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
