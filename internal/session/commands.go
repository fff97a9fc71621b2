package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarymap/internal/filter"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
	"github.com/fr4nk3nst1ner/salarymap/internal/utils"
)

var (
	// ErrUnknownCommand is returned for a command word the explorer does not know
	ErrUnknownCommand = errors.New("unknown command")
	// ErrQuit ends the explore loop
	ErrQuit = errors.New("quit")
)

const (
	prompt       = "salarymap> "
	maxFindHits  = 10
	unboundedArg = "off"
)

// Command is one parsed explorer line.
type Command struct {
	Name string
	Args []string
	// Rest is everything after the command word, trimmed, used by commands
	// whose argument may contain spaces (job titles).
	Rest string
}

// ParseCommand splits a line into its command word and arguments.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}
	}
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	return Command{
		Name: strings.ToLower(name),
		Args: strings.Fields(rest),
		Rest: rest,
	}
}

var helpText = []string{
	"title <job title>     filter by an exact job title (no argument clears it)",
	"find <text>           fuzzy search the job titles",
	"pick                  choose a job title interactively",
	"size <S|M|L>          toggle a company size",
	"exp <EN|MI|SE|EX>     toggle an experience level",
	"type <PT|FT|CT|FL>    toggle an employment type",
	"min <salary|off>      set the minimum salary, e.g. min 80k",
	"max <salary|off>      set the maximum salary",
	"range <min> <max>     set both salary bounds ('off' for unbounded)",
	"click <country code>  select a country on the map (again to deselect)",
	"tooltip <code>        show the average salary of a country",
	"clear                 reset every filter",
	"show                  redraw the dashboard",
	"state                 print the active filters",
	"choices               list the values available to each filter",
	"help                  show this help",
	"quit                  leave the explorer",
}

// Execute runs one explorer line. Filter commands dispatch exactly one action.
func (s *Session) Execute(line string, out io.Writer) error {
	cmd := ParseCommand(line)
	switch cmd.Name {
	case "":
		return nil
	case "help", "?":
		fmt.Fprintln(out, strings.Join(helpText, "\n"))
		return nil
	case "quit", "exit", "q":
		return ErrQuit
	case "title":
		return s.selectTitle(cmd.Rest, out)
	case "find":
		return s.find(cmd.Rest, out)
	case "pick":
		title, err := s.picker.PickJobTitle(s.JobTitles())
		if err != nil {
			return err
		}
		return s.Dispatch(filter.SelectJobTitle{Title: title})
	case "size":
		code, err := codeArg[models.CompanySize](cmd, models.CompanySizes)
		if err != nil {
			return err
		}
		return s.Dispatch(filter.ToggleCompanySize{Size: code})
	case "exp":
		code, err := codeArg[models.ExperienceLevel](cmd, models.ExperienceLevels)
		if err != nil {
			return err
		}
		return s.Dispatch(filter.ToggleExperienceLevel{Level: code})
	case "type":
		code, err := codeArg[models.EmploymentType](cmd, models.EmploymentTypes)
		if err != nil {
			return err
		}
		return s.Dispatch(filter.ToggleEmploymentType{Type: code})
	case "min", "max":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("usage: %s <salary|%s>", cmd.Name, unboundedArg)
		}
		bound, err := parseBound(cmd.Args[0])
		if err != nil {
			return err
		}
		if cmd.Name == "min" {
			return s.Dispatch(filter.SetMinSalary{Min: bound})
		}
		return s.Dispatch(filter.SetMaxSalary{Max: bound})
	case "range":
		if len(cmd.Args) != 2 {
			return fmt.Errorf("usage: range <min|%s> <max|%s>", unboundedArg, unboundedArg)
		}
		lo, err := parseBound(cmd.Args[0])
		if err != nil {
			return err
		}
		hi, err := parseBound(cmd.Args[1])
		if err != nil {
			return err
		}
		if lo != nil && hi != nil && *lo > *hi {
			fmt.Fprintln(out, pterm.Warning.Sprint("minimum is above maximum, nothing will match"))
		}
		return s.Dispatch(filter.SetSalaryRange{Min: lo, Max: hi})
	case "click":
		return s.Dispatch(filter.ClickCountry{Code: cmd.Rest})
	case "tooltip":
		if cmd.Rest == "" {
			return errors.New("usage: tooltip <country code>")
		}
		fmt.Fprintln(out, s.Tooltip(strings.ToUpper(cmd.Rest)))
		return nil
	case "clear", "reset":
		return s.Dispatch(filter.Clear{})
	case "show":
		return s.Refresh()
	case "state":
		s.printState(out)
		return nil
	case "choices":
		s.printChoices(out)
		return nil
	}
	return fmt.Errorf("%w: %q (try 'help')", ErrUnknownCommand, cmd.Name)
}

func (s *Session) selectTitle(title string, out io.Writer) error {
	if title != "" && !contains(s.JobTitles(), title) {
		fmt.Fprintln(out, pterm.Warning.Sprintf("no job title is exactly %q", title))
		if hits := s.suggest(title); len(hits) > 0 {
			fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(hits, ", "))
		}
	}
	return s.Dispatch(filter.SelectJobTitle{Title: title})
}

func (s *Session) find(query string, out io.Writer) error {
	if query == "" {
		return errors.New("usage: find <text>")
	}
	hits := s.suggest(query)
	if len(hits) == 0 {
		fmt.Fprintln(out, "No matching job titles")
		return nil
	}
	for _, h := range hits {
		fmt.Fprintln(out, "  "+h)
	}
	return nil
}

func (s *Session) suggest(query string) []string {
	return RankTitles(query, s.JobTitles(), maxFindHits)
}

// RankTitles fuzzy matches query against titles, case-insensitively, and
// returns at most limit matches, closest first. limit <= 0 returns every match.
func RankTitles(query string, titles []string, limit int) []string {
	ranks := fuzzy.RankFindFold(query, titles)
	sort.Sort(ranks)
	hits := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if limit > 0 && len(hits) == limit {
			break
		}
		hits = append(hits, r.Target)
	}
	return hits
}

func (s *Session) printState(out io.Writer) {
	fmt.Fprintf(out, "Filters: %s\n", s.state)
	if sel := s.selection; sel.Current != "" {
		fmt.Fprintf(out, "Selected: %s\n", s.Region(sel.Current).Name)
	}
	if lo, hi, ok := s.dataset.SalaryExtent(); ok {
		fmt.Fprintf(out, "Dataset salaries: %s .. %s\n", utils.FormatSalary(lo), utils.FormatSalary(hi))
	}
	fmt.Fprintf(out, "Matching records: %d of %d\n", s.last.Total, s.dataset.Total)
}

func (s *Session) printChoices(out io.Writer) {
	d := s.Choices()
	fmt.Fprintf(out, "Experience levels: %s\n", listCodes(d.ExperienceLevels))
	fmt.Fprintf(out, "Employment types:  %s\n", listCodes(d.EmploymentTypes))
	fmt.Fprintf(out, "Company sizes:     %s\n", listCodes(d.CompanySizes))
	fmt.Fprintf(out, "Locations:         %s\n", strings.Join(d.Locations, ", "))
	fmt.Fprintf(out, "Job titles:        %d (use find or pick)\n", len(s.JobTitles()))
}

// Explore reads commands from in until quit, EOF or ctx is done. Command
// errors are printed and the loop continues.
func (s *Session) Explore(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		err := s.Execute(scanner.Text(), out)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, pterm.Error.Sprint(err))
		}
	}
}

type categoryCode interface {
	~string
	Known() bool
}

func codeArg[T categoryCode](cmd Command, valid []T) (T, error) {
	var zero T
	if len(cmd.Args) != 1 {
		return zero, fmt.Errorf("usage: %s <%s>", cmd.Name, joinCodes(valid))
	}
	v := T(strings.ToUpper(cmd.Args[0]))
	if !v.Known() {
		return zero, fmt.Errorf("%s: unknown code %q, expected one of %s", cmd.Name, cmd.Args[0], joinCodes(valid))
	}
	return v, nil
}

func joinCodes[T ~string](codes []T) string {
	return strings.Join(codeStrings(codes), "|")
}

// listCodes renders codes with their labels, e.g. "SE (Senior), MI (Mid-level)".
func listCodes[T categoryLabel](codes []T) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%s (%s)", string(c), c.Label())
	}
	return strings.Join(parts, ", ")
}

type categoryLabel interface {
	~string
	Label() string
}

func codeStrings[T ~string](codes []T) []string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return parts
}

func parseBound(arg string) (*float64, error) {
	if strings.EqualFold(arg, unboundedArg) || arg == "-" {
		return nil, nil
	}
	v, err := utils.ParseSalary(arg)
	if err != nil {
		return nil, err
	}
	return filter.Float(v), nil
}

func contains(sorted []string, v string) bool {
	i := sort.SearchStrings(sorted, v)
	return i < len(sorted) && sorted[i] == v
}
