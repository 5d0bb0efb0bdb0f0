package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// wantJSON reports whether --json was given.
func wantJSON(flags *viper.Viper) bool {
	return flags != nil && flags.GetBool(jsonKey)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	return tw
}

// display returns the display settings in effect.
func display(c *app.Container) domain.DisplayConfig {
	if c == nil || c.AppConfig == nil {
		return domain.NewDefaultConfig().Display
	}
	return c.AppConfig.Display
}

// renderGuests prints the 1-based guest list.
func renderGuests(w io.Writer, guests []domain.PersonInfo) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"#", "Name", "Age"})
	for i, g := range guests {
		tw.AppendRow(table.Row{i + 1, g.Name, g.Age})
	}
	tw.Render()
}

// renderTasks prints the 1-based task list.
func renderTasks(w io.Writer, tasks []domain.TaskInfo) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"#", "Description", "Deadline", "Responsible", "Status"})
	for i, t := range tasks {
		tw.AppendRow(table.Row{i + 1, t.Description, t.Deadline, t.Responsible, t.Status})
	}
	tw.Render()
}

// renderGifts prints the gifts a person received, with a total footer.
func renderGifts(w io.Writer, gifts []domain.GiftLine, total float64, d domain.DisplayConfig) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"#", "Gift", "From", "Price"})
	for i, g := range gifts {
		tw.AppendRow(table.Row{i + 1, g.Name, g.Giver, d.Money(g.Price)})
	}
	tw.AppendFooter(table.Row{"", "", "Total", d.Money(total)})
	tw.Render()
}

func taskInfos(tasks []*domain.Task) []domain.TaskInfo {
	infos := make([]domain.TaskInfo, 0, len(tasks))
	for _, t := range tasks {
		infos = append(infos, t.Info())
	}
	return infos
}

func personInfos(people []*domain.Person) []domain.PersonInfo {
	infos := make([]domain.PersonInfo, 0, len(people))
	for _, p := range people {
		infos = append(infos, p.Info())
	}
	return infos
}

// parseNumber parses a 1-based list position argument.
func parseNumber(what, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number %q", what, arg)
	}
	return n, nil
}
