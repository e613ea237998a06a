//go:build !windows

package volume

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirEntry struct {
	name string
}

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                { return false }
func (e fakeDirEntry) Type() fs.FileMode          { return fs.ModeSymlink }
func (e fakeDirEntry) Info() (fs.FileInfo, error) { return nil, errors.New("not implemented") }

type fakeInfo struct {
	dir bool
}

func (i fakeInfo) Name() string       { return "" }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return 0 }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

const sampleMounts = `sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
tmpfs /run tmpfs rw,nosuid,nodev 0 0
/dev/nvme0n1p1 /boot/efi vfat rw,relatime 0 0
/dev/sda1 /mnt/backup\040disk ext4 rw,relatime 0 0
/dev/sdb1 /media/usb vfat rw,relatime 0 0
/dev/sda1 /mnt/backup\040disk ext4 rw,relatime 0 0
/dev/loop3 /snap/core/123 squashfs ro 0 0
`

func linuxProber(labels map[string]string, labelDirErr error) *SystemProber {
	p := NewSystemProber()
	p.goos = "linux"
	p.readFile = func(name string) ([]byte, error) {
		if name == mountsFile {
			return []byte(sampleMounts), nil
		}
		return nil, os.ErrNotExist
	}
	p.readDir = func(name string) ([]os.DirEntry, error) {
		if labelDirErr != nil {
			return nil, labelDirErr
		}
		var entries []os.DirEntry
		for name := range labels {
			entries = append(entries, fakeDirEntry{name: name})
		}
		return entries, nil
	}
	p.resolve = func(path string) (string, error) {
		if name, ok := strings.CutPrefix(path, labelDir+"/"); ok {
			if target, ok := labels[name]; ok {
				return target, nil
			}
		}
		return path, nil
	}
	p.stat = func(name string) (os.FileInfo, error) {
		if name == "/media/usb" {
			return nil, os.ErrNotExist
		}
		return fakeInfo{dir: true}, nil
	}
	return p
}

func TestLinuxCandidates_RootFirstThenBlockDevices(t *testing.T) {
	p := linuxProber(nil, nil)

	assert.Equal(t, []string{"/", "/media/usb", "/mnt/backup disk"}, p.Candidates())
}

func TestLinuxCandidates_MountsUnreadable_RootOnly(t *testing.T) {
	p := linuxProber(nil, nil)
	p.readFile = func(string) ([]byte, error) { return nil, os.ErrPermission }

	assert.Equal(t, []string{"/"}, p.Candidates())
}

func TestLinuxLabel_MatchesByLabelLink(t *testing.T) {
	p := linuxProber(map[string]string{
		"Backup\\x20Disk": "/dev/sda1",
		"rootfs":          "/dev/nvme0n1p2",
	}, nil)
	p.Candidates()

	label, err := p.Label("/mnt/backup disk")
	require.NoError(t, err)
	assert.Equal(t, "Backup Disk", label)

	label, err = p.Label("/")
	require.NoError(t, err)
	assert.Equal(t, "rootfs", label)

	label, err = p.Label("/media/usb")
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLinuxLabel_NoLabelDirectory_NoName(t *testing.T) {
	p := linuxProber(nil, os.ErrNotExist)
	p.Candidates()

	label, err := p.Label("/")

	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLinuxLabel_UnreadableLabelDirectory_Fails(t *testing.T) {
	p := linuxProber(nil, os.ErrPermission)
	p.Candidates()

	_, err := p.Label("/")

	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLinuxEnumerator_EndToEnd(t *testing.T) {
	p := linuxProber(map[string]string{"Backup": "/dev/sda1"}, nil)
	e := NewEnumerator(p, zerolog.Nop())

	vols := e.Volumes()

	assert.Equal(t, []Volume{
		{Root: "/", Name: NoName},
		{Root: "/mnt/backup disk", Name: "Backup"},
	}, vols)
}

func TestDarwinCandidates_VolumesDirectory(t *testing.T) {
	p := NewSystemProber()
	p.goos = "darwin"
	p.readDir = func(name string) ([]os.DirEntry, error) {
		require.Equal(t, darwinDir, name)
		return []os.DirEntry{
			fakeDirEntry{name: "Macintosh HD"},
			fakeDirEntry{name: ".timemachine"},
			fakeDirEntry{name: "Archive"},
		}, nil
	}

	assert.Equal(t, []string{"/", "/Volumes/Archive", "/Volumes/Macintosh HD"}, p.Candidates())

	label, err := p.Label("/Volumes/Archive")
	require.NoError(t, err)
	assert.Equal(t, "Archive", label)

	label, err = p.Label("/")
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestUnescapeMount(t *testing.T) {
	assert.Equal(t, "/mnt/my disk", unescapeMount(`/mnt/my\040disk`))
	assert.Equal(t, "My Label", unescapeMount(`My\x20Label`))
	assert.Equal(t, "/plain", unescapeMount("/plain"))
	assert.Equal(t, `trailing\`, unescapeMount(`trailing\`))
}
