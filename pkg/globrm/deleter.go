package globrm

import "os"

// Deleter abstracts the filesystem remove call so tests can substitute a
// recording implementation and prove that dry runs never delete.
type Deleter interface {
	Remove(path string) error
}

// OSDeleter implements Deleter with the real os package call.
type OSDeleter struct{}

func (OSDeleter) Remove(path string) error {
	return os.Remove(path)
}

// RecordingDeleter implements Deleter for testing. It records every call
// and fails the paths listed in Fail without touching the disk.
type RecordingDeleter struct {
	Calls []string
	Fail  map[string]error
}

func (d *RecordingDeleter) Remove(path string) error {
	d.Calls = append(d.Calls, path)
	if err, ok := d.Fail[path]; ok {
		return err
	}
	return nil
}
