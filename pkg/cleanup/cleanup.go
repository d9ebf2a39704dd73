package cleanup

import "log/slog"

type Job struct {
	Name string
	F    func() error
}

var (
	jobs []*Job
)

func Register(j *Job) {
	jobs = append(jobs, j)
}

// Run executes registered jobs in reverse registration order, so resources
// opened first are released last.
func Run() {
	for i := len(jobs) - 1; i >= 0; i-- {
		j := jobs[i]
		if err := j.F(); err != nil {
			slog.Warn("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
		}
	}
}
