package task

import "fmt"

// DataVersion is the current layout of Data.
const DataVersion = 1

// Data is the plain serialized form of a Task. History stores Data rather than
// Task so the stored layout does not depend on how Task keeps its fields.
type Data struct {
	Version     int      `yaml:"version"`
	Description string   `yaml:"description"`
	DueDate     string   `yaml:"due_date,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Snapshot is an ordered capture of a whole task list.
type Snapshot []Data

// Data captures t as an independent Data value.
func (t Task) Data() Data {
	return Data{
		Version:     DataVersion,
		Description: t.description,
		DueDate:     t.dueDate,
		Tags:        cloneStrings(t.tags),
	}
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	d.Tags = cloneStrings(d.Tags)
	return d
}

// FromData rebuilds a Task from its serialized form.
func FromData(d Data) (Task, error) {
	switch d.Version {
	case 0, DataVersion:
	default:
		return Task{}, fmt.Errorf("task: unsupported data version %d", d.Version)
	}
	return New(Fields{Description: d.Description, DueDate: d.DueDate, Tags: d.Tags})
}

// Capture converts a task list into a Snapshot.
func Capture(tasks []Task) Snapshot {
	snap := make(Snapshot, len(tasks))
	for i, t := range tasks {
		snap[i] = t.Data()
	}
	return snap
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for i, d := range s {
		out[i] = d.Clone()
	}
	return out
}

// Tasks reconstructs the list held by s. Every returned Task is freshly built,
// so mutating the result never reaches back into s. Entries are trusted as-is
// since a Snapshot is only produced by Capture; use FromData for outside input.
func (s Snapshot) Tasks() []Task {
	out := make([]Task, len(s))
	for i, d := range s {
		out[i] = Task{
			description: d.Description,
			dueDate:     d.DueDate,
			tags:        cloneStrings(d.Tags),
		}
	}
	return out
}
