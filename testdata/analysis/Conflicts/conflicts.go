package conflicts

//derive:Builder
type Job struct { // want `cannot derive Builder for Job: JobBuilder is already declared`
	Name  string
	Build bool // want `cannot derive Builder for Job: field Build conflicts with the Build method`
}

// JobBuilder is written by hand.
type JobBuilder struct{}

//derive:Builder
type Task struct { // want `cannot derive Builder for Task: NewTaskBuilder is already declared`
	Name string
}

func NewTaskBuilder() {}
