package backend

import (
	"os"
	"time"
)

// stamp identifies one version of the watched file.
type stamp struct {
	modTime time.Time
	size    int64
}

func stampOf(info os.FileInfo) stamp {
	return stamp{modTime: info.ModTime(), size: info.Size()}
}

func (s stamp) same(o stamp) bool {
	return s.size == o.size && s.modTime.Equal(o.modTime)
}

// settler holds a change back until the file looks the same on two polls in
// a row, so a reload never reads a file an editor is still writing.
type settler struct {
	current stamp
	pending *stamp
}

// observe records the latest stamp and reports whether a settled change is
// ready to load.
func (s *settler) observe(latest stamp) bool {
	if latest.same(s.current) {
		s.pending = nil
		return false
	}
	if s.pending == nil || !latest.same(*s.pending) {
		s.pending = &latest
		return false
	}
	s.current = latest
	s.pending = nil
	return true
}
