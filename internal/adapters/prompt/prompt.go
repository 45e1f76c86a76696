// Package prompt reads a day plan interactively from line-oriented input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xvierd/dusk/internal/domain"
)

// finishWord ends task entry.
const finishWord = "finish"

const (
	bedtimePrompt   = "Please enter your desired bed-time below in format HH:MM."
	firstTaskPrompt = "What is the name of a task that you want to accomplish today? Write its name below in alphabet letters and underscores. Type <finish> to end input"
	nextTaskPrompt  = "What would be the another task? Write its name below in alphabet letters and underscores. Type <finish> to end input."
	blankNamePrompt = "A task needs a name. Type <finish> to end input."
	startPrompt     = "What should be its beginning time? Enter in format HH:MM"
	endPrompt       = "What should be its end time? Enter in format HH:MM"

	startedFormat = "Bedtime timer started! I'll remind you at %s."
	tasksFormat   = "Tasks for today: %s"
)

// Reader asks for a bedtime and tasks.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a reader prompting on out and reading answers from in.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

// ReadPlan asks for the bedtime and then for tasks until "finish" or the
// end of input. It does not check tasks for overlaps.
func (r *Reader) ReadPlan() (domain.Plan, error) {
	bedtime, err := r.ReadBedtime()
	if err != nil {
		return domain.Plan{}, err
	}
	r.sayf(startedFormat, bedtime)

	tasks, err := r.ReadTasks()
	if err != nil {
		return domain.Plan{}, err
	}

	plan := domain.NewPlan(bedtime, tasks)
	r.sayf(tasksFormat, FormatNames(plan.Names()))
	return plan, nil
}

// ReadBedtime asks for the bedtime.
func (r *Reader) ReadBedtime() (domain.TimeOfDay, error) {
	r.say(bedtimePrompt)
	line, ok := r.line()
	if !ok {
		return 0, fmt.Errorf("bedtime: %w", domain.ErrInputClosed)
	}
	t, err := domain.ParseTimeOfDay(line)
	if err != nil {
		return 0, fmt.Errorf("bedtime: %w", err)
	}
	return t, nil
}

// ReadTasks reads tasks until "finish". End of input at a name prompt
// finishes too; in the middle of a task it is domain.ErrInputClosed.
func (r *Reader) ReadTasks() ([]domain.Task, error) {
	var tasks []domain.Task
	r.say(firstTaskPrompt)

	for {
		line, ok := r.line()
		if !ok {
			return tasks, nil
		}
		name := strings.TrimSpace(line)
		if name == finishWord {
			return tasks, nil
		}
		if name == "" {
			r.say(blankNamePrompt)
			continue
		}

		start, err := r.readTime(name, startPrompt)
		if err != nil {
			return nil, err
		}
		end, err := r.readTime(name, endPrompt)
		if err != nil {
			return nil, err
		}

		task, err := domain.NewTask(name, start, end)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
		r.say(nextTaskPrompt)
	}
}

func (r *Reader) readTime(task, prompt string) (domain.TimeOfDay, error) {
	r.say(prompt)
	line, ok := r.line()
	if !ok {
		return 0, fmt.Errorf("task %q: %w", task, domain.ErrInputClosed)
	}
	t, err := domain.ParseTimeOfDay(line)
	if err != nil {
		return 0, fmt.Errorf("task %q: %w", task, err)
	}
	return t, nil
}

func (r *Reader) line() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Reader) say(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

func (r *Reader) sayf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

// Announce prints the confirmation ReadPlan shows, for plans that were
// loaded without prompting.
func Announce(out io.Writer, plan domain.Plan) {
	_, _ = fmt.Fprintf(out, startedFormat+"\n", plan.Bedtime())
	_, _ = fmt.Fprintf(out, tasksFormat+"\n", FormatNames(plan.Names()))
}

// FormatNames renders names as ["a", "b"].
func FormatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
