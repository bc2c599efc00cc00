package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"pet-care-companion/internal/apiclient"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	cellStyle     = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	outsideStyle  = cellStyle.Copy().Faint(true)
	todayStyle    = cellStyle.Copy().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = cellStyle.Copy().Reverse(true)
	headerStyle   = cellStyle.Copy().Bold(true)
)

var (
	doneColor     = color.New(color.FgGreen).SprintFunc()
	missedColor   = color.New(color.FgRed).SprintFunc()
	upcomingColor = color.New(color.FgYellow).SprintFunc()
)

func historyStatus(status string) string {
	switch status {
	case "Done":
		return doneColor(status)
	case "Missed":
		return missedColor(status)
	default:
		return upcomingColor(status)
	}
}

func check(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func printTasks(w io.Writer, title string, items []apiclient.Task) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))))
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no tasks"))
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 50
	tbl.Separator = "  "
	tbl.AddRow("", "ID", "DATE", "TIME", "PET", "TITLE", "TAGS")
	for _, t := range items {
		tbl.AddRow(check(t.Completed), t.ID, t.Date, orDash(t.Time), t.Pet, t.Title, strings.Join(t.Tags, ","))
	}
	fmt.Fprintln(w, tbl)
}

func printBuckets(w io.Writer, b apiclient.Buckets) {
	printTasks(w, "Today", b.Today)
	fmt.Fprintln(w)
	printTasks(w, "Tomorrow", b.Tomorrow)
	fmt.Fprintln(w)
	printTasks(w, "Upcoming", b.Upcoming)
}

func printTask(w io.Writer, t apiclient.Task) {
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow("ID:", t.ID)
	tbl.AddRow("Title:", t.Title)
	tbl.AddRow("Description:", orDash(t.Description))
	tbl.AddRow("Date:", t.Date)
	tbl.AddRow("Time:", orDash(t.Time))
	tbl.AddRow("Pet:", t.Pet)
	tbl.AddRow("Tags:", orDash(strings.Join(t.Tags, ", ")))
	tbl.AddRow("Completed:", t.Completed)
	fmt.Fprintln(w, tbl)
}

func printHistory(w io.Writer, items []apiclient.HistoryEntry) {
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no tasks"))
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 50
	tbl.Separator = "  "
	tbl.AddRow("STATUS", "ID", "DATE", "PET", "TITLE", "TAGS")
	for _, e := range items {
		tbl.AddRow(historyStatus(e.Status), e.ID, e.Date, e.Pet, e.Title, strings.Join(e.Tags, ","))
	}
	fmt.Fprintln(w, tbl)
}

func printReports(w io.Writer, items []apiclient.Report) {
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no reports"))
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.Separator = "  "
	tbl.AddRow("ID", "DATE", "STATUS", "OWNER", "PET", "TITLE", "LOCATION")
	for _, r := range items {
		owner := ""
		if r.IsOwner {
			owner = "me"
		}
		tbl.AddRow(r.ID, r.Date, r.Status, owner, fmt.Sprintf("%s (%s)", r.PetName, orDash(r.PetType)), r.Title, r.Location)
	}
	fmt.Fprintln(w, tbl)
}

func printReport(w io.Writer, r apiclient.Report) {
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow("ID:", r.ID)
	tbl.AddRow("Title:", r.Title)
	tbl.AddRow("Date:", r.Date)
	tbl.AddRow("Status:", r.Status)
	tbl.AddRow("Pet:", fmt.Sprintf("%s, %s, %s", r.PetName, orDash(r.PetType), orDash(r.PetAge)))
	tbl.AddRow("Location:", orDash(r.Location))
	tbl.AddRow("Description:", r.Description)
	tbl.AddRow("Images:", len(r.Images))
	if r.FoundAt != nil {
		tbl.AddRow("Found at:", r.FoundAt.Format(time.RFC3339))
	}
	fmt.Fprintln(w, tbl)
}

func printPets(w io.Writer, items []apiclient.Pet) {
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no pets"))
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "TYPE", "BREED", "BIRTH DATE", "AGE")
	for _, p := range items {
		tbl.AddRow(p.ID, p.Name, p.Type, orDash(p.Breed), orDash(p.BirthDate), orDash(p.Age))
	}
	fmt.Fprintln(w, tbl)
}

func printProfile(w io.Writer, p apiclient.Profile) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s  %s", orDash(p.Initials), p.Name)))
	tbl := uitable.New()
	tbl.AddRow("Email:", orDash(p.Email))
	tbl.AddRow("Phone:", orDash(p.Phone))
	tbl.AddRow("Image:", orDash(p.ImageURL))
	fmt.Fprintln(w, tbl)
}

// renderCalendar dibuja la grilla semana por semana. Los días con tareas llevan "*".
func renderCalendar(cal apiclient.Calendar) string {
	var sb strings.Builder

	if m, err := time.Parse("2006-01", cal.Month); err == nil {
		sb.WriteString(titleStyle.Render(m.Format("January 2006")))
	} else {
		sb.WriteString(titleStyle.Render(cal.Month))
	}
	sb.WriteString("\n")

	start := time.Sunday
	if len(cal.Days) > 0 {
		if d, err := time.Parse("2006-01-02", cal.Days[0].Date); err == nil {
			start = d.Weekday()
		}
	}
	header := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		header = append(header, headerStyle.Render(((start + time.Weekday(i)) % 7).String()[:2]))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	sb.WriteString("\n")

	for i := 0; i < len(cal.Days); i += 7 {
		end := i + 7
		if end > len(cal.Days) {
			end = len(cal.Days)
		}
		row := make([]string, 0, 7)
		for _, d := range cal.Days[i:end] {
			row = append(row, renderDay(d))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderDay(d apiclient.CalendarDay) string {
	label := "?"
	if len(d.Date) == len("2006-01-02") {
		label = strings.TrimLeft(d.Date[8:], "0")
	}
	if d.HasTasks {
		label += "*"
	} else {
		label += " "
	}

	switch {
	case d.IsSelected:
		return selectedStyle.Render(label)
	case d.IsToday:
		return todayStyle.Render(label)
	case !d.InMonth:
		return outsideStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}
