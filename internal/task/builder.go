package task

// Builder assembles a Task step by step. Nothing is validated until Build.
type Builder struct {
	fields Fields
}

// NewBuilder starts a builder for a task with the given description.
func NewBuilder(description string) *Builder {
	return &Builder{fields: Fields{Description: description}}
}

// DueDate sets the due date. An empty value clears it.
func (b *Builder) DueDate(due string) *Builder {
	b.fields.DueDate = due
	return b
}

// Tag appends a single tag.
func (b *Builder) Tag(tag string) *Builder {
	b.fields.Tags = append(b.fields.Tags, tag)
	return b
}

// Tags appends several tags in order.
func (b *Builder) Tags(tags ...string) *Builder {
	b.fields.Tags = append(b.fields.Tags, tags...)
	return b
}

// Build validates the accumulated fields and returns the Task. The builder can
// keep being used afterwards; the returned Task does not share its tag slice.
func (b *Builder) Build() (Task, error) {
	fields := b.fields
	fields.Tags = cloneStrings(b.fields.Tags)
	return New(fields)
}
